package repositories

import (
	"context"

	"mktrading-backend/apperr"
	"mktrading-backend/database"
	"mktrading-backend/models"
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error)
	Update(ctx context.Context, id int64, in models.EmployeeInput) error
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	gw *database.Gateway
}

func NewEmployeeRepository(gw *database.Gateway) EmployeeRepository {
	return &employeeRepository{gw: gw}
}

const employeeColumns = `id, name, contact, role, joining_date, created_at`

func (r *employeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name, id`
	if err := r.gw.Select(ctx, "list employees", &employees, query); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	employee := &models.Employee{}
	query := `
		INSERT INTO employees (name, contact, role, joining_date)
		VALUES (?, ?, ?, ?)
		RETURNING ` + employeeColumns
	if _, err := r.gw.Get(ctx, "insert employee", employee, query,
		in.Name,
		in.Contact,
		in.Role,
		in.JoiningDate,
	); err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepository) Update(ctx context.Context, id int64, in models.EmployeeInput) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE employees
		SET name = ?,
		    contact = ?,
		    role = ?,
		    joining_date = ?
		WHERE id = ?
	`
	rowsAffected, err := r.gw.Exec(ctx, "update employee", query,
		in.Name,
		in.Contact,
		in.Role,
		in.JoiningDate,
		id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Employee not found")
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.gw.Exec(ctx, "delete employee", `DELETE FROM employees WHERE id = ?`, id)
	return err
}
