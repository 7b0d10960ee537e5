package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL stores blobs as rows of the kv_store table created by the schema package.
type SQL struct {
	db      *sql.DB
	rowLock string
}

// SQLOption configures a SQL store.
type SQLOption func(*SQL)

// WithRowLock makes Update read with SELECT ... FOR UPDATE, for engines
// with row locks such as mysql. sqlite locks the database on write instead.
func WithRowLock() SQLOption {
	return func(s *SQL) {
		s.rowLock = " FOR UPDATE"
	}
}

// NewSQL wraps an open database. Close closes the database.
func NewSQL(db *sql.DB, opts ...SQLOption) *SQL {
	s := &SQL{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT storage_value FROM kv_store WHERE storage_key = ?", key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrNotFound
	case err != nil:
		return "", fmt.Errorf("failed to query value for %s: %w", key, err)
	}
	return value, nil
}

// Set replaces the row inside one transaction so readers never see the key missing.
func (s *SQL) Set(ctx context.Context, key, value string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin set tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM kv_store WHERE storage_key = ?", key); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO kv_store (storage_key, storage_value) VALUES (?, ?)", key, value); err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit set tx: %w", err)
	}
	return nil
}

// Update reads and rewrites key inside one transaction.
func (s *SQL) Update(ctx context.Context, key string, fn UpdateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin update tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var current string
	found := true
	err = tx.QueryRowContext(ctx, "SELECT storage_value FROM kv_store WHERE storage_key = ?"+s.rowLock, key).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		found = false
	case err != nil:
		return fmt.Errorf("failed to query value for %s: %w", key, err)
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM kv_store WHERE storage_key = ?", key); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO kv_store (storage_key, storage_value) VALUES (?, ?)", key, next); err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit update tx: %w", err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE storage_key = ?", key); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	return nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}
