package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"gdtbot/internal/domain"
)

// DailyThreadStore maps reference-zone days to their daily discussion posts.
type DailyThreadStore struct {
	db *DB
}

func NewDailyThreadStore(db *DB) *DailyThreadStore {
	return &DailyThreadStore{db: db}
}

// Get returns the daily thread for a day, or nil when none exists yet.
func (s *DailyThreadStore) Get(ctx context.Context, date string) (*domain.DailyThread, error) {
	var rec domain.DailyThread
	err := s.db.db.GetContext(ctx, &rec,
		"SELECT post_id, date, is_featured FROM daily_threads WHERE date = ?", date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Featured returns every daily thread currently marked featured, across all
// days.
func (s *DailyThreadStore) Featured(ctx context.Context) ([]domain.DailyThread, error) {
	var recs []domain.DailyThread
	err := s.db.db.SelectContext(ctx, &recs,
		"SELECT post_id, date, is_featured FROM daily_threads WHERE is_featured ORDER BY date")
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Insert records a newly created daily thread.
func (s *DailyThreadStore) Insert(ctx context.Context, postID int64, date string, featured bool) error {
	_, err := s.db.db.ExecContext(ctx,
		"INSERT INTO daily_threads (post_id, date, is_featured) VALUES (?, ?, ?)",
		postID, date, featured)
	return err
}

// SetFeatured flips the featured flag on an existing daily thread.
func (s *DailyThreadStore) SetFeatured(ctx context.Context, postID int64, featured bool) error {
	_, err := s.db.db.ExecContext(ctx,
		"UPDATE daily_threads SET is_featured = ? WHERE post_id = ?", featured, postID)
	return err
}
