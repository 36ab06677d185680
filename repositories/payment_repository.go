package repositories

import (
	"context"

	"mktrading-backend/apperr"
	"mktrading-backend/database"
	"mktrading-backend/models"
)

type PaymentRepository interface {
	List(ctx context.Context) ([]models.PaymentRow, error)
	Create(ctx context.Context, in models.PaymentInput) (*models.Payment, error)
	Update(ctx context.Context, id int64, in models.PaymentInput) error
	Delete(ctx context.Context, id int64) error
}

type paymentRepository struct {
	gw *database.Gateway
}

func NewPaymentRepository(gw *database.Gateway) PaymentRepository {
	return &paymentRepository{gw: gw}
}

const paymentColumns = `id, party_id, amount, payment_date, notes, created_at`

func (r *paymentRepository) List(ctx context.Context) ([]models.PaymentRow, error) {
	payments := []models.PaymentRow{}
	query := `
		SELECT pm.id, pm.party_id, pm.amount, pm.payment_date, pm.notes, pm.created_at,
		       p.name AS party_name
		FROM payments pm
		LEFT JOIN parties p ON p.id = pm.party_id
		ORDER BY pm.payment_date DESC NULLS LAST, pm.created_at DESC, pm.id DESC
	`
	if err := r.gw.Select(ctx, "list payments", &payments, query); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Create(ctx context.Context, in models.PaymentInput) (*models.Payment, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	payment := &models.Payment{}
	query := `
		INSERT INTO payments (party_id, amount, payment_date, notes)
		VALUES (?, ?, ?, ?)
		RETURNING ` + paymentColumns
	if _, err := r.gw.Get(ctx, "insert payment", payment, query,
		in.PartyID,
		in.Amount,
		in.PaymentDate,
		in.Notes,
	); err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, id int64, in models.PaymentInput) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE payments
		SET party_id = ?,
		    amount = ?,
		    payment_date = ?,
		    notes = ?
		WHERE id = ?
	`
	rowsAffected, err := r.gw.Exec(ctx, "update payment", query,
		in.PartyID,
		in.Amount,
		in.PaymentDate,
		in.Notes,
		id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Payment not found")
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.gw.Exec(ctx, "delete payment", `DELETE FROM payments WHERE id = ?`, id)
	return err
}
