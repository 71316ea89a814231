package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gdtbot/internal/domain"
	"gdtbot/internal/gametime"
	"gdtbot/internal/markdown"
)

// Routing maps game types to the artifact they get: a dedicated game-day
// thread, or a comment under the daily discussion thread. Types in neither
// set are ignored.
type Routing struct {
	Thread  map[domain.GameType]bool
	Comment map[domain.GameType]bool
}

// NewRouting builds a Routing from configured type names.
func NewRouting(threadTypes, commentTypes []string) (Routing, error) {
	r := Routing{
		Thread:  make(map[domain.GameType]bool),
		Comment: make(map[domain.GameType]bool),
	}
	for _, name := range threadTypes {
		t, err := domain.ParseGameType(name)
		if err != nil {
			return Routing{}, fmt.Errorf("thread types: %w", err)
		}
		r.Thread[t] = true
	}
	for _, name := range commentTypes {
		t, err := domain.ParseGameType(name)
		if err != nil {
			return Routing{}, fmt.Errorf("comment types: %w", err)
		}
		r.Comment[t] = true
	}
	return r, nil
}

type Config struct {
	Lead    time.Duration
	Trail   time.Duration
	Teams   map[string]bool
	Routing Routing
}

// ReconcileService drives one polling tick: it fetches the schedule around
// the current reference day, enriches tracked games with live detail, and
// converges remote posts and comments toward the fetched state.
type ReconcileService struct {
	feed      Feed
	publisher Publisher
	threads   GameDayThreadStore
	daily     DailyThreadStore
	comments  CommentStore
	notifier  Notifier
	logger    *slog.Logger
	config    Config
	now       func() time.Time
}

func NewReconcileService(
	feed Feed,
	publisher Publisher,
	threads GameDayThreadStore,
	daily DailyThreadStore,
	comments CommentStore,
	notifier Notifier,
	logger *slog.Logger,
	cfg Config,
) *ReconcileService {
	if cfg.Lead == 0 {
		cfg.Lead = gametime.DefaultLeadMinutes * time.Minute
	}
	if cfg.Trail == 0 {
		cfg.Trail = gametime.DefaultTrailMinutes * time.Minute
	}
	return &ReconcileService{
		feed:      feed,
		publisher: publisher,
		threads:   threads,
		daily:     daily,
		comments:  comments,
		notifier:  notifier,
		logger:    logger,
		config:    cfg,
		now:       time.Now,
	}
}

// Reconcile runs one tick. A schedule fetch failure aborts the tick; every
// later failure is isolated to its game and counted in the returned stats.
func (s *ReconcileService) Reconcile(ctx context.Context) (*domain.TickStats, error) {
	startTime := s.now()
	stats := &domain.TickStats{}

	games, err := s.feed.Schedule(ctx, gametime.Yesterday(startTime), gametime.Tomorrow(startTime))
	if err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}
	stats.Scheduled = len(games)

	tracked := s.filterTracked(games)
	stats.Tracked = len(tracked)
	s.logger.Debug("fetched schedule", "scheduled", stats.Scheduled, "tracked", stats.Tracked)

	if len(tracked) == 0 {
		stats.Duration = s.now().Sub(startTime)
		return stats, nil
	}

	s.fetchDetails(ctx, tracked, startTime, stats)

	dailyThread := s.reconcileDailyThread(ctx, tracked, startTime, stats)

	for _, g := range tracked {
		s.reconcileGame(ctx, g, dailyThread, startTime, stats)
	}

	stats.Duration = s.now().Sub(startTime)
	s.logger.Info("tick completed",
		"scheduled", stats.Scheduled,
		"tracked", stats.Tracked,
		"created", stats.Created,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}

// filterTracked keeps games where either side is a tracked team. An empty
// team set tracks every team.
func (s *ReconcileService) filterTracked(games []domain.Game) []domain.Game {
	if len(s.config.Teams) == 0 {
		return games
	}
	var tracked []domain.Game
	for _, g := range games {
		if s.config.Teams[g.AwayTeam.Abbreviation] || s.config.Teams[g.HomeTeam.Abbreviation] {
			tracked = append(tracked, g)
		}
	}
	return tracked
}

// fetchDetails replaces window-eligible skeleton games with their live feed
// in place. A failed detail fetch leaves the skeleton; the tick carries on.
func (s *ReconcileService) fetchDetails(ctx context.Context, games []domain.Game, now time.Time, stats *domain.TickStats) {
	for i, g := range games {
		if !gametime.InPostingWindow(now, g.StartTime, g.EndTime, s.config.Lead, s.config.Trail) {
			continue
		}
		detail, err := s.feed.Game(ctx, g.ID)
		if err != nil {
			s.logger.Warn("fetch game detail failed", "game_id", g.ID, "error", err)
			stats.Errors++
			continue
		}
		games[i] = *detail
	}
}

// reconcileDailyThread creates or updates the daily discussion thread when
// today has enough games to warrant one: at least two, or at least one that
// is routed to a comment and so has nowhere else to live.
func (s *ReconcileService) reconcileDailyThread(ctx context.Context, games []domain.Game, now time.Time, stats *domain.TickStats) *domain.DailyThread {
	today := gametime.Day(now)

	var todayGames []domain.Game
	commentRouted := 0
	for _, g := range games {
		if gametime.Day(g.StartTime) != today {
			continue
		}
		todayGames = append(todayGames, g)
		if t, err := g.Type(); err == nil && s.config.Routing.Comment[t] {
			commentRouted++
		}
	}

	if len(todayGames) < 2 && commentRouted == 0 {
		return nil
	}

	title := markdown.DailyTitle(today)
	body := markdown.DailyBody(s.dayGames(ctx, todayGames))

	existing, err := s.daily.Get(ctx, today)
	if err != nil {
		s.logger.Error("load daily thread failed", "day", today, "error", err)
		stats.Errors++
		return nil
	}

	if existing != nil {
		if err := s.publisher.EditPost(ctx, existing.PostID, title, body); err != nil {
			s.logger.Warn("update daily thread failed", "post_id", existing.PostID, "error", err)
			stats.Errors++
			return existing
		}
		stats.Updated++
		s.notify(ctx, domain.ArtifactEvent{
			Kind:     domain.ArtifactKindDailyThread,
			Action:   domain.ArtifactActionUpdate,
			RemoteID: existing.PostID,
			Day:      today,
		})
		return existing
	}

	// Yesterday's thread stays pinned until today's exists, so unpin just
	// before creating.
	s.unfeaturePrevious(ctx, stats)

	postID, err := s.publisher.CreatePost(ctx, title, body)
	if err != nil {
		s.logger.Warn("create daily thread failed", "day", today, "error", err)
		stats.Errors++
		return nil
	}
	if err := s.publisher.FeaturePost(ctx, postID, true); err != nil {
		s.logger.Warn("feature daily thread failed", "post_id", postID, "error", err)
		stats.Errors++
	}
	if err := s.daily.Insert(ctx, postID, today, true); err != nil {
		s.logger.Error("record daily thread failed", "post_id", postID, "error", err)
		stats.Errors++
		return nil
	}
	stats.Created++
	s.notify(ctx, domain.ArtifactEvent{
		Kind:     domain.ArtifactKindDailyThread,
		Action:   domain.ArtifactActionCreate,
		RemoteID: postID,
		Day:      today,
	})
	return &domain.DailyThread{PostID: postID, Date: today, Featured: true}
}

func (s *ReconcileService) unfeaturePrevious(ctx context.Context, stats *domain.TickStats) {
	featured, err := s.daily.Featured(ctx)
	if err != nil {
		s.logger.Error("load featured threads failed", "error", err)
		stats.Errors++
		return
	}
	for _, f := range featured {
		if err := s.publisher.FeaturePost(ctx, f.PostID, false); err != nil {
			s.logger.Warn("unfeature thread failed", "post_id", f.PostID, "error", err)
			stats.Errors++
			continue
		}
		if err := s.daily.SetFeatured(ctx, f.PostID, false); err != nil {
			s.logger.Error("record unfeature failed", "post_id", f.PostID, "error", err)
			stats.Errors++
		}
	}
}

// dayGames pairs each of today's games with a link to its artifact, when
// one has already been created. A store failure costs the overview one link,
// not the thread.
func (s *ReconcileService) dayGames(ctx context.Context, games []domain.Game) []markdown.DayGame {
	out := make([]markdown.DayGame, 0, len(games))
	for _, g := range games {
		dg := markdown.DayGame{Game: g}
		thread, err := s.threads.Get(ctx, g.ID)
		if err != nil {
			s.logger.Warn("load game thread for overview failed", "game_id", g.ID, "error", err)
		}
		if thread != nil {
			dg.Link = s.publisher.PostURL(thread.PostID)
			out = append(out, dg)
			continue
		}
		comment, err := s.comments.Get(ctx, g.ID)
		if err != nil {
			s.logger.Warn("load game comment for overview failed", "game_id", g.ID, "error", err)
		}
		if comment != nil {
			dg.Link = s.publisher.CommentURL(comment.CommentID)
		}
		out = append(out, dg)
	}
	return out
}

func (s *ReconcileService) reconcileGame(ctx context.Context, g domain.Game, dailyThread *domain.DailyThread, now time.Time, stats *domain.TickStats) {
	if !gametime.InPostingWindow(now, g.StartTime, g.EndTime, s.config.Lead, s.config.Trail) {
		stats.Skipped++
		return
	}

	gameType, err := g.Type()
	if err != nil {
		s.logger.Warn("skipping game with unknown type", "game_id", g.ID, "error", err)
		stats.Errors++
		return
	}

	switch {
	case s.config.Routing.Thread[gameType]:
		s.reconcileThread(ctx, g, stats)
	case s.config.Routing.Comment[gameType]:
		s.reconcileComment(ctx, g, dailyThread, stats)
	default:
		stats.Skipped++
	}
}

func (s *ReconcileService) reconcileThread(ctx context.Context, g domain.Game, stats *domain.TickStats) {
	existing, err := s.threads.Get(ctx, g.ID)
	if err != nil {
		s.logger.Error("load game thread failed", "game_id", g.ID, "error", err)
		stats.Errors++
		return
	}

	title := markdown.ThreadTitle(g)
	body := markdown.ThreadBody(g)

	if existing != nil {
		if err := s.publisher.EditPost(ctx, existing.PostID, title, body); err != nil {
			s.logger.Warn("update game thread failed", "game_id", g.ID, "post_id", existing.PostID, "error", err)
			stats.Errors++
			return
		}
		stats.Updated++
		s.notify(ctx, domain.ArtifactEvent{
			Kind:     domain.ArtifactKindGameDayThread,
			Action:   domain.ArtifactActionUpdate,
			RemoteID: existing.PostID,
			GameID:   g.ID,
		})
		return
	}

	postID, err := s.publisher.CreatePost(ctx, title, body)
	if err != nil {
		s.logger.Warn("create game thread failed", "game_id", g.ID, "error", err)
		stats.Errors++
		return
	}
	if err := s.threads.Insert(ctx, postID, g.ID); err != nil {
		s.logger.Error("record game thread failed", "game_id", g.ID, "post_id", postID, "error", err)
		stats.Errors++
		return
	}
	stats.Created++
	s.notify(ctx, domain.ArtifactEvent{
		Kind:     domain.ArtifactKindGameDayThread,
		Action:   domain.ArtifactActionCreate,
		RemoteID: postID,
		GameID:   g.ID,
	})
}

func (s *ReconcileService) reconcileComment(ctx context.Context, g domain.Game, dailyThread *domain.DailyThread, stats *domain.TickStats) {
	existing, err := s.comments.Get(ctx, g.ID)
	if err != nil {
		s.logger.Error("load game comment failed", "game_id", g.ID, "error", err)
		stats.Errors++
		return
	}

	body := markdown.CommentBody(g)

	if existing != nil {
		if err := s.publisher.EditComment(ctx, existing.CommentID, body); err != nil {
			s.logger.Warn("update game comment failed", "game_id", g.ID, "comment_id", existing.CommentID, "error", err)
			stats.Errors++
			return
		}
		stats.Updated++
		s.notify(ctx, domain.ArtifactEvent{
			Kind:     domain.ArtifactKindComment,
			Action:   domain.ArtifactActionUpdate,
			RemoteID: existing.CommentID,
			GameID:   g.ID,
		})
		return
	}

	// A new comment needs a daily thread to hang off. If the thread could
	// not be created this tick, the comment waits for the next one.
	if dailyThread == nil {
		s.logger.Warn("no daily thread for comment-routed game", "game_id", g.ID)
		stats.Skipped++
		return
	}

	commentID, err := s.publisher.CreateComment(ctx, dailyThread.PostID, body)
	if err != nil {
		s.logger.Warn("create game comment failed", "game_id", g.ID, "error", err)
		stats.Errors++
		return
	}
	if err := s.comments.Insert(ctx, commentID, g.ID); err != nil {
		s.logger.Error("record game comment failed", "game_id", g.ID, "comment_id", commentID, "error", err)
		stats.Errors++
		return
	}
	stats.Created++
	s.notify(ctx, domain.ArtifactEvent{
		Kind:     domain.ArtifactKindComment,
		Action:   domain.ArtifactActionCreate,
		RemoteID: commentID,
		GameID:   g.ID,
	})
}

// notify is best effort: a broker failure never fails the tick.
func (s *ReconcileService) notify(ctx context.Context, event domain.ArtifactEvent) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Warn("notify failed", "kind", event.Kind, "action", event.Action, "error", err)
	}
}
