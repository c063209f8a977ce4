package db

import (
	"context"

	"hrdesk/api/internal/model"
)

func (q *Queries) ListDepartments(ctx context.Context) ([]model.Department, error) {
	rows, err := q.db.Query(ctx, `SELECT id, name FROM dept ORDER BY id`)
	if err != nil {
		return nil, mapError("list departments", err)
	}
	defer rows.Close()

	items := []model.Department{}
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, mapError("list departments", err)
		}
		items = append(items, d)
	}
	return items, mapError("list departments", rows.Err())
}

func (q *Queries) CreateDepartment(ctx context.Context, name string) (model.Department, error) {
	d := model.Department{Name: name}
	err := q.db.QueryRow(ctx, `INSERT INTO dept (name) VALUES ($1) RETURNING id`, name).Scan(&d.ID)
	return d, mapError("create department", err)
}
