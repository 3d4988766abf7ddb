// Package sqlite records purchase intents and newsletter subscriptions in a
// single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/SafalBhandari12/event/internal/domain"
	"github.com/SafalBhandari12/event/internal/storage/sqlite/migrations"
)

// Store implements the intent and subscription repositories.
type Store struct {
	db *sql.DB
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

// Open opens the database at path and applies the embedded schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type txKey struct{}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Store) GetIntentByIdempotencyKey(ctx context.Context, eventSlug, key string) (*domain.PurchaseIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var in domain.PurchaseIntent
	var createdAt int64
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT id, event_slug, tier_id, buyer_name, email, quantity, idempotency_key, created_at
		 FROM purchase_intents WHERE event_slug = ? AND idempotency_key = ?`,
		eventSlug, key,
	).Scan(&in.ID, &in.EventSlug, &in.TierID, &in.Name, &in.Email, &in.Quantity, &in.IdempotencyKey, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get intent: %w", err)
	}
	in.CreatedAt = fromMillis(createdAt)
	return &in, nil
}

func (s *Store) CreateIntent(ctx context.Context, in domain.PurchaseIntent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var key any
	if in.IdempotencyKey != "" {
		key = in.IdempotencyKey
	}
	_, err := s.conn(ctx).ExecContext(ctx,
		`INSERT INTO purchase_intents (
		   id, event_slug, tier_id, buyer_name, email, quantity, idempotency_key, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.EventSlug, in.TierID, in.Name, in.Email, in.Quantity, key, toMillis(in.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateIntent
		}
		return fmt.Errorf("create intent: %w", err)
	}
	return nil
}

func (s *Store) GetSubscription(ctx context.Context, eventSlug, email string) (*domain.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var sub domain.Subscription
	var createdAt int64
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT id, event_slug, email, created_at
		 FROM newsletter_subscriptions WHERE event_slug = ? AND email = ?`,
		eventSlug, email,
	).Scan(&sub.ID, &sub.EventSlug, &sub.Email, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	sub.CreatedAt = fromMillis(createdAt)
	return &sub, nil
}

func (s *Store) CreateSubscription(ctx context.Context, sub domain.Subscription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.conn(ctx).ExecContext(ctx,
		`INSERT INTO newsletter_subscriptions (id, event_slug, email, created_at) VALUES (?, ?, ?, ?)`,
		sub.ID, sub.EventSlug, sub.Email, toMillis(sub.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadySubscribed
		}
		return fmt.Errorf("create subscription: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// applyMigrations runs each embedded .sql file once, recording it in
// schema_migrations.
func applyMigrations(db *sql.DB, fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, name := range names {
		var n int
		if err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations WHERE name = ?`, name).Scan(&n); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if n > 0 {
			continue
		}
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", name, err)
		}
		if _, err := tx.Exec(string(raw)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`, name, toMillis(time.Now())); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}
	return nil
}
