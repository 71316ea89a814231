// Package sqlite persists the mapping from games and days to the remote
// artifacts already created for them.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// schemaVersion is the newest schema this build knows how to reach.
const schemaVersion = 3

// DB wraps the SQLite handle and owns the versioned schema.
type DB struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// Open connects to the database file (creating it if absent) and upgrades
// the schema to the current version. Upgrade steps are ordered and each is
// applied at most once per database.
func Open(path string, logger *slog.Logger) (*DB, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	d := &DB{db: db, logger: logger}
	if err := d.upgrade(); err != nil {
		db.Close()
		return nil, fmt.Errorf("upgrade schema: %w", err)
	}
	return d, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) upgrade() error {
	from, err := d.version()
	if err != nil {
		return err
	}

	steps := map[int]func() error{
		1: d.upgradeToV1,
		2: d.upgradeToV2,
		3: d.upgradeToV3,
	}
	for v := from + 1; v <= schemaVersion; v++ {
		step, ok := steps[v]
		if !ok {
			return fmt.Errorf("no upgrade step for schema version %d", v)
		}
		d.logger.Warn("upgrading db schema", "to_version", v)
		if err := step(); err != nil {
			return fmt.Errorf("upgrade to version %d: %w", v, err)
		}
	}
	return d.setVersion(schemaVersion)
}

func (d *DB) version() (int, error) {
	var version int
	err := d.db.Get(&version, "SELECT version FROM db_schema WHERE rowid = 0")
	if err != nil {
		// A fresh database has no db_schema table yet.
		if errors.Is(err, sql.ErrNoRows) || isMissingTable(err) {
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}

func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}

func (d *DB) setVersion(version int) error {
	_, err := d.db.Exec("INSERT OR REPLACE INTO db_schema (rowid, version) VALUES (0, ?)", version)
	return err
}

func (d *DB) upgradeToV1() error {
	if _, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS game_day_threads(
			post_id INTEGER PRIMARY KEY NOT NULL,
			game_id INTEGER NOT NULL
		)`); err != nil {
		return err
	}
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS db_schema(
			rowid INTEGER PRIMARY KEY NOT NULL,
			version INTEGER NOT NULL
		)`)
	return err
}

func (d *DB) upgradeToV2() error {
	if _, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS comments(
			comment_id INTEGER PRIMARY KEY NOT NULL,
			game_id INTEGER NOT NULL
		)`); err != nil {
		return err
	}
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_threads(
			post_id INTEGER PRIMARY KEY NOT NULL,
			date TEXT NOT NULL UNIQUE
		)`)
	return err
}

func (d *DB) upgradeToV3() error {
	_, err := d.db.Exec("ALTER TABLE daily_threads ADD COLUMN is_featured BOOLEAN NOT NULL DEFAULT false")
	return err
}
