package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"gdtbot/internal/domain"
)

// GameDayThreadStore maps games to their game-day thread posts.
type GameDayThreadStore struct {
	db *DB
}

func NewGameDayThreadStore(db *DB) *GameDayThreadStore {
	return &GameDayThreadStore{db: db}
}

// Get returns the thread record for a game, or nil when none exists yet.
func (s *GameDayThreadStore) Get(ctx context.Context, gameID int64) (*domain.GameDayThread, error) {
	var rec domain.GameDayThread
	err := s.db.db.GetContext(ctx, &rec,
		"SELECT post_id, game_id FROM game_day_threads WHERE game_id = ?", gameID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert records a newly created thread post for a game.
func (s *GameDayThreadStore) Insert(ctx context.Context, postID, gameID int64) error {
	_, err := s.db.db.ExecContext(ctx,
		"INSERT INTO game_day_threads (post_id, game_id) VALUES (?, ?)", postID, gameID)
	return err
}
