package db

import "context"

func (q *Queries) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(id) FROM admin`).Scan(&n)
	return n, mapError("count admins", err)
}

func (q *Queries) CountEmployees(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(id) FROM employee`).Scan(&n)
	return n, mapError("count employees", err)
}

func (q *Queries) SumSalaries(ctx context.Context) (float64, error) {
	var total float64
	err := q.db.QueryRow(ctx, `SELECT COALESCE(SUM(salary), 0)::float8 FROM employee`).Scan(&total)
	return total, mapError("sum salaries", err)
}
