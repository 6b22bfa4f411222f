package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// ErrNotFound is returned when a row scoped to the owner does not exist.
var ErrNotFound = errors.New("record not found")

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the SQL-backed datastore for profiles, keywords, comments,
// settings and activity history. Every query is scoped by owner.
type Store struct {
	db     *sql.DB
	driver string
	sb     sq.StatementBuilderType
	now    func() time.Time
}

// New wraps an open pool. driver selects the placeholder style.
func New(conn *sql.DB, driver string) *Store {
	var format sq.PlaceholderFormat = sq.Question
	if driver == "postgres" {
		format = sq.Dollar
	}
	return &Store{
		db:     conn,
		driver: driver,
		sb:     sq.StatementBuilder.PlaceholderFormat(format),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the timestamp source.
func (s *Store) SetClock(now func() time.Time) {
	s.now = func() time.Time { return now().UTC() }
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) exec(ctx context.Context, q querier, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.ExecContext(ctx, query, args...)
}

func (s *Store) query(ctx context.Context, q querier, b sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.QueryContext(ctx, query, args...)
}

func (s *Store) queryRow(ctx context.Context, q querier, b sq.Sqlizer) (*sql.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.QueryRowContext(ctx, query, args...), nil
}

// count runs a COUNT(1) select and returns the number.
func (s *Store) count(ctx context.Context, q querier, b sq.SelectBuilder) (int, error) {
	row, err := s.queryRow(ctx, q, b)
	if err != nil {
		return 0, err
	}
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// contains builds a case-insensitive substring match over one or more columns.
func (s *Store) contains(term string, columns ...string) sq.Sqlizer {
	pattern := "%" + strings.TrimSpace(term) + "%"
	or := sq.Or{}
	for _, col := range columns {
		if s.driver == "postgres" {
			or = append(or, sq.ILike{col: pattern})
		} else {
			or = append(or, sq.Like{col: pattern})
		}
	}
	return or
}

// insertIgnoringConflicts builds an insert that leaves rows colliding with
// a unique key untouched instead of failing. conflict names that key.
func (s *Store) insertIgnoringConflicts(table string, conflict ...string) sq.InsertBuilder {
	b := s.sb.Insert(table)
	if s.driver == "mysql" {
		return b.Options("IGNORE")
	}
	return b.Suffix("ON CONFLICT (" + strings.Join(conflict, ", ") + ") DO NOTHING")
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
