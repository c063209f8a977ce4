package db

import (
	"context"

	"hrdesk/api/internal/model"
)

func (q *Queries) GetAdminByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	row := q.db.QueryRow(ctx, `
    SELECT id, email, password, name
    FROM admin
    WHERE email = $1
  `, email)
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name)
	return a, mapError("get admin by email", err)
}

// GetHRByEmail only matches employees whose department is named HR, so an
// employee elsewhere looks exactly like an unknown email.
func (q *Queries) GetHRByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	row := q.db.QueryRow(ctx, `
    SELECT e.id, e.email, e.password, e.name
    FROM employee e
    INNER JOIN dept d ON e.dept_id = d.id
    WHERE e.email = $1 AND d.name = 'HR'
  `, email)
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name)
	return a, mapError("get hr by email", err)
}

func (q *Queries) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	rows, err := q.db.Query(ctx, `SELECT id, email, name FROM admin ORDER BY id`)
	if err != nil {
		return nil, mapError("list admins", err)
	}
	defer rows.Close()

	items := []model.Admin{}
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.Name); err != nil {
			return nil, mapError("list admins", err)
		}
		items = append(items, a)
	}
	return items, mapError("list admins", rows.Err())
}
