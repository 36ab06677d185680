package repositories

import (
	"context"

	"mktrading-backend/apperr"
	"mktrading-backend/database"
	"mktrading-backend/models"
)

type SalaryRepository interface {
	List(ctx context.Context) ([]models.SalaryRow, error)
	Create(ctx context.Context, in models.SalaryInput) (*models.Salary, error)
	Update(ctx context.Context, id int64, in models.SalaryInput) error
	Delete(ctx context.Context, id int64) error
}

type salaryRepository struct {
	gw *database.Gateway
}

func NewSalaryRepository(gw *database.Gateway) SalaryRepository {
	return &salaryRepository{gw: gw}
}

const salaryColumns = `id, employee_id, month, year, amount, paid_date, notes, created_at`

func (r *salaryRepository) List(ctx context.Context) ([]models.SalaryRow, error) {
	salaries := []models.SalaryRow{}
	query := `
		SELECT s.id, s.employee_id, s.month, s.year, s.amount, s.paid_date, s.notes, s.created_at,
		       e.name AS employee_name
		FROM salaries s
		LEFT JOIN employees e ON e.id = s.employee_id
		ORDER BY s.year DESC NULLS LAST, s.month DESC NULLS LAST, s.id DESC
	`
	if err := r.gw.Select(ctx, "list salaries", &salaries, query); err != nil {
		return nil, err
	}
	return salaries, nil
}

func (r *salaryRepository) Create(ctx context.Context, in models.SalaryInput) (*models.Salary, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	salary := &models.Salary{}
	query := `
		INSERT INTO salaries (employee_id, month, year, amount, paid_date, notes)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING ` + salaryColumns
	if _, err := r.gw.Get(ctx, "insert salary", salary, query,
		in.EmployeeID,
		in.Month,
		in.Year,
		in.Amount,
		in.PaidDate,
		in.Notes,
	); err != nil {
		return nil, err
	}
	return salary, nil
}

func (r *salaryRepository) Update(ctx context.Context, id int64, in models.SalaryInput) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE salaries
		SET employee_id = ?,
		    month = ?,
		    year = ?,
		    amount = ?,
		    paid_date = ?,
		    notes = ?
		WHERE id = ?
	`
	rowsAffected, err := r.gw.Exec(ctx, "update salary", query,
		in.EmployeeID,
		in.Month,
		in.Year,
		in.Amount,
		in.PaidDate,
		in.Notes,
		id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Salary not found")
	}
	return nil
}

func (r *salaryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.gw.Exec(ctx, "delete salary", `DELETE FROM salaries WHERE id = ?`, id)
	return err
}
