package applied

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/pkg/clock"
)

const createAppliedTable = `
CREATE TABLE IF NOT EXISTS applied_envelopes (
	avatar_id      TEXT    NOT NULL,
	sequence_index INTEGER NOT NULL,
	applied_at     INTEGER NOT NULL,
	PRIMARY KEY (avatar_id, sequence_index)
)`

// SQLiteConfig contains configuration for the SQLite applied repository
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", strings.TrimSpace(cfg.Path), vb)
	return vb.Build()
}

// SQLiteRepository keeps marks in a local database file so they survive a
// restart of a single-node deployment
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens (creating if needed) the database at cfg.Path
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	// One writer keeps INSERT OR IGNORE serialized within the process.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createAppliedTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create applied table")
	}

	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// TryMarkApplied inserts the mark; a primary key conflict means it was
// already applied
func (r *SQLiteRepository) TryMarkApplied(ctx context.Context, input TryMarkAppliedInput) (*TryMarkAppliedOutput, error) {
	if err := validateKey(input.AvatarID, input.SequenceIndex); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO applied_envelopes (avatar_id, sequence_index, applied_at) VALUES (?, ?, ?)`,
		input.AvatarID, input.SequenceIndex, r.clock.Now().UTC().UnixMilli())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mark envelope %d for avatar %s", input.SequenceIndex, input.AvatarID)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read affected rows")
	}

	return &TryMarkAppliedOutput{Marked: rows == 1}, nil
}

// Unmark deletes the mark if present
func (r *SQLiteRepository) Unmark(ctx context.Context, input UnmarkInput) (*UnmarkOutput, error) {
	if err := validateKey(input.AvatarID, input.SequenceIndex); err != nil {
		return nil, err
	}

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM applied_envelopes WHERE avatar_id = ? AND sequence_index = ?`,
		input.AvatarID, input.SequenceIndex)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmark envelope %d for avatar %s", input.SequenceIndex, input.AvatarID)
	}

	return &UnmarkOutput{}, nil
}
