package repositories

import (
	"context"

	"mktrading-backend/apperr"
	"mktrading-backend/database"
	"mktrading-backend/models"
)

type OfficeExpenseRepository interface {
	List(ctx context.Context) ([]models.OfficeExpense, error)
	Create(ctx context.Context, in models.OfficeExpenseInput) (*models.OfficeExpense, error)
	Update(ctx context.Context, id int64, in models.OfficeExpenseInput) error
	Delete(ctx context.Context, id int64) error
}

type officeExpenseRepository struct {
	gw *database.Gateway
}

func NewOfficeExpenseRepository(gw *database.Gateway) OfficeExpenseRepository {
	return &officeExpenseRepository{gw: gw}
}

const officeExpenseColumns = `id, category, description, amount, date, created_at`

func (r *officeExpenseRepository) List(ctx context.Context) ([]models.OfficeExpense, error) {
	expenses := []models.OfficeExpense{}
	query := `SELECT ` + officeExpenseColumns + ` FROM office_expenses ORDER BY date DESC NULLS LAST, id DESC`
	if err := r.gw.Select(ctx, "list office expenses", &expenses, query); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *officeExpenseRepository) Create(ctx context.Context, in models.OfficeExpenseInput) (*models.OfficeExpense, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	expense := &models.OfficeExpense{}
	query := `
		INSERT INTO office_expenses (category, description, amount, date)
		VALUES (?, ?, ?, ?)
		RETURNING ` + officeExpenseColumns
	if _, err := r.gw.Get(ctx, "insert office expense", expense, query,
		in.Category,
		in.Description,
		in.Amount,
		in.Date,
	); err != nil {
		return nil, err
	}
	return expense, nil
}

func (r *officeExpenseRepository) Update(ctx context.Context, id int64, in models.OfficeExpenseInput) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE office_expenses
		SET category = ?,
		    description = ?,
		    amount = ?,
		    date = ?
		WHERE id = ?
	`
	rowsAffected, err := r.gw.Exec(ctx, "update office expense", query,
		in.Category,
		in.Description,
		in.Amount,
		in.Date,
		id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Office expense not found")
	}
	return nil
}

func (r *officeExpenseRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.gw.Exec(ctx, "delete office expense", `DELETE FROM office_expenses WHERE id = ?`, id)
	return err
}
