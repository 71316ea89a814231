package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"gdtbot/internal/domain"
)

// CommentStore maps games to their comments under the daily thread.
type CommentStore struct {
	db *DB
}

func NewCommentStore(db *DB) *CommentStore {
	return &CommentStore{db: db}
}

// Get returns the comment record for a game, or nil when none exists yet.
func (s *CommentStore) Get(ctx context.Context, gameID int64) (*domain.GameComment, error) {
	var rec domain.GameComment
	err := s.db.db.GetContext(ctx, &rec,
		"SELECT comment_id, game_id FROM comments WHERE game_id = ?", gameID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert records a newly created comment for a game.
func (s *CommentStore) Insert(ctx context.Context, commentID, gameID int64) error {
	_, err := s.db.db.ExecContext(ctx,
		"INSERT INTO comments (comment_id, game_id) VALUES (?, ?)", commentID, gameID)
	return err
}
