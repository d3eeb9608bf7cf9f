package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jonathan/resume-studio/internal/storage"
)

const slotsTable = "resume_slots"

const createSlotsTable = `CREATE TABLE IF NOT EXISTS resume_slots (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// pgProgramLimitExceeded is raised when a value exceeds a server-side size limit
const pgProgramLimitExceeded = "54000"

// Slots is a storage.Backend over the resume_slots table. Each Set is a single
// upsert statement, so the previous value stays intact when it fails.
type Slots struct {
	db    *DB
	quota int
}

// NewSlots returns a slot backend; quota <= 0 disables the client-side size check
func NewSlots(db *DB, quota int) *Slots {
	return &Slots{db: db, quota: quota}
}

// Get implements storage.Backend
func (s *Slots) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.q.QueryRow(ctx,
		`SELECT value FROM resume_slots WHERE key = $1`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, &storage.BackendError{Op: "get", Key: key, Message: "failed to read slot", Cause: err}
	}
	return value, true, nil
}

// Set implements storage.Backend
func (s *Slots) Set(ctx context.Context, key string, value []byte) error {
	if s.quota > 0 && len(value) > s.quota {
		return &storage.QuotaError{Size: len(value), Quota: s.quota}
	}

	_, err := s.db.q.Exec(ctx,
		`INSERT INTO resume_slots (key, value, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgProgramLimitExceeded {
			return fmt.Errorf("%w: %s", storage.ErrQuotaExceeded, pgErr.Message)
		}
		return &storage.BackendError{Op: "set", Key: key, Message: "failed to write slot", Cause: err}
	}
	return nil
}
