package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"gdtbot/internal/domain"
)

type Feed interface {
	Schedule(ctx context.Context, startDate, endDate string) ([]domain.Game, error)
	Game(ctx context.Context, gameID int64) (*domain.Game, error)
}

type Publisher interface {
	CreatePost(ctx context.Context, title, body string) (int64, error)
	EditPost(ctx context.Context, postID int64, title, body string) error
	FeaturePost(ctx context.Context, postID int64, featured bool) error
	CreateComment(ctx context.Context, postID int64, body string) (int64, error)
	EditComment(ctx context.Context, commentID int64, body string) error
	PostURL(postID int64) string
	CommentURL(commentID int64) string
}

type GameDayThreadStore interface {
	Get(ctx context.Context, gameID int64) (*domain.GameDayThread, error)
	Insert(ctx context.Context, postID, gameID int64) error
}

type DailyThreadStore interface {
	Get(ctx context.Context, date string) (*domain.DailyThread, error)
	Featured(ctx context.Context) ([]domain.DailyThread, error)
	Insert(ctx context.Context, postID int64, date string, featured bool) error
	SetFeatured(ctx context.Context, postID int64, featured bool) error
}

type CommentStore interface {
	Get(ctx context.Context, gameID int64) (*domain.GameComment, error)
	Insert(ctx context.Context, commentID, gameID int64) error
}

type Notifier interface {
	Notify(ctx context.Context, event domain.ArtifactEvent) error
	Close() error
}
