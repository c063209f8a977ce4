package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrdesk/api/internal/employee"
)

type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type Store struct {
	Pool    Beginner
	Queries *Queries
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool, Queries: New(pool)}
}

func (s *Store) WithTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	queries := s.Queries.WithTx(tx)
	if err := fn(queries); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// DeleteEmployeeCascade removes leaves, then attendance, then the employee
// row in one transaction.
func (s *Store) DeleteEmployeeCascade(ctx context.Context, id int64) error {
	return s.WithTx(ctx, func(q *Queries) error {
		if err := q.DeleteLeavesByEmployee(ctx, id); err != nil {
			return err
		}
		if err := q.DeleteAttendanceByEmployee(ctx, id); err != nil {
			return err
		}
		return q.DeleteEmployee(ctx, id)
	})
}

func (s *Store) GetEmployeeImage(ctx context.Context, id int64) (*string, error) {
	return s.Queries.GetEmployeeImage(ctx, id)
}

func (s *Store) CreateEmployee(ctx context.Context, passwordHash string, fields employee.Update) (int64, error) {
	return s.Queries.CreateEmployee(ctx, passwordHash, fields)
}

func (s *Store) UpdateEmployee(ctx context.Context, id int64, fields employee.Update) (int64, error) {
	return s.Queries.UpdateEmployee(ctx, id, fields)
}
