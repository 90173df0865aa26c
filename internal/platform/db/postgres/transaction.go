package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/santiagovOK/legajos/internal/core/employee"
	"github.com/sirupsen/logrus"
)

// Queryer is the query surface shared by pgxpool.Pool, pgxpool.Conn, pgx.Tx
// and an open Scope.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type queryerContextKey struct{}

var queryerKey = queryerContextKey{}

func contextWithQueryer(ctx context.Context, q Queryer) context.Context {
	return context.WithValue(ctx, queryerKey, q)
}

// QueryerFromContext returns the queryer placed in the context by an open
// transaction scope, or fallback when the context carries none. Repositories
// call this with their pool so the same method serves both the self-contained
// and the transaction-participating form of every operation.
func QueryerFromContext(ctx context.Context, fallback Queryer) Queryer {
	if ctx == nil {
		return fallback
	}
	if q, ok := ctx.Value(queryerKey).(Queryer); ok {
		return q
	}
	return fallback
}

// Conn is the slice of a pooled connection the scope needs.
type Conn interface {
	Queryer
	Begin(ctx context.Context) (pgx.Tx, error)
}

type scopeState int

const (
	stateIdle scopeState = iota
	stateActive
	stateClosed
)

// Scope binds a single pooled connection to an explicit transaction boundary.
// It starts idle, meaning statements auto-commit on the connection. Begin
// moves it to active, Commit and Rollback move it back to idle, and Close
// rolls back anything still active before releasing the connection.
type Scope struct {
	conn    Conn
	release func()
	tx      pgx.Tx
	state   scopeState
	log     logrus.FieldLogger
}

func newScope(conn Conn, release func(), log logrus.FieldLogger) *Scope {
	if release == nil {
		release = func() {}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scope{conn: conn, release: release, log: log}
}

// Begin starts a transaction on the scope's connection.
func (s *Scope) Begin(ctx context.Context) error {
	switch s.state {
	case stateActive:
		return errors.New("postgres: transaction already active")
	case stateClosed:
		return errors.New("postgres: scope is closed")
	}

	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}
	s.tx = tx
	s.state = stateActive
	return nil
}

// Commit persists all work since Begin. It fails unless a transaction is
// active, so it can be attempted at most once per Begin.
func (s *Scope) Commit(ctx context.Context) error {
	if s.state != stateActive {
		return errors.New("postgres: no active transaction to commit")
	}

	tx := s.tx
	s.tx = nil
	s.state = stateIdle

	if err := tx.Commit(ctx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			s.log.WithError(rbErr).Warn("rollback after failed commit")
		}
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

// Rollback discards all work since Begin. It is a no-op outside an active
// transaction, and storage errors are logged and swallowed so they never mask
// the failure that caused the rollback.
func (s *Scope) Rollback(ctx context.Context) {
	if s.state != stateActive {
		return
	}

	tx := s.tx
	s.tx = nil
	s.state = stateIdle

	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		s.log.WithError(err).Warn("rollback failed")
	}
}

// Close rolls back any active transaction and releases the connection. Safe
// to call more than once; errors during cleanup are logged, never returned.
func (s *Scope) Close(ctx context.Context) {
	if s.state == stateClosed {
		return
	}
	s.Rollback(ctx)
	s.state = stateClosed
	s.release()
}

// Context returns a context that routes repository calls through this scope.
func (s *Scope) Context(ctx context.Context) context.Context {
	return contextWithQueryer(ctx, s)
}

func (s *Scope) queryer() Queryer {
	if s.state == stateActive {
		return s.tx
	}
	return s.conn
}

func (s *Scope) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return s.queryer().Query(ctx, sql, args...)
}

func (s *Scope) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.queryer().QueryRow(ctx, sql, args...)
}

func (s *Scope) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return s.queryer().Exec(ctx, sql, args...)
}

// ScopeManager opens transaction scopes over connections acquired from a pgx
// pool. One scope holds one connection exclusively until Close.
type ScopeManager struct {
	pool *pgxpool.Pool
	log  logrus.FieldLogger
}

// NewScopeManager creates a ScopeManager.
func NewScopeManager(pool *pgxpool.Pool, log logrus.FieldLogger) *ScopeManager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ScopeManager{pool: pool, log: log}
}

// Open acquires a connection and wraps it in an idle scope.
func (m *ScopeManager) Open(ctx context.Context) (employee.Scope, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("postgres: acquire connection: %w", err)
	}
	return newScope(conn, conn.Release, m.log), nil
}
