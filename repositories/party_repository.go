package repositories

import (
	"context"
	"strings"

	"mktrading-backend/apperr"
	"mktrading-backend/database"
	"mktrading-backend/models"
)

type PartyRepository interface {
	List(ctx context.Context) ([]models.Party, error)
	Create(ctx context.Context, in models.PartyInput) (*models.Party, error)
	Update(ctx context.Context, id int64, in models.PartyInput) error
	Delete(ctx context.Context, id int64) error
	SearchByChallanNumber(ctx context.Context, challanNumber string) (*models.PartyChallan, error)
}

type partyRepository struct {
	gw *database.Gateway
}

func NewPartyRepository(gw *database.Gateway) PartyRepository {
	return &partyRepository{gw: gw}
}

const partyColumns = `id, name, contact, address, gstin, created_at`

func (r *partyRepository) List(ctx context.Context) ([]models.Party, error) {
	parties := []models.Party{}
	query := `SELECT ` + partyColumns + ` FROM parties ORDER BY name, id`
	if err := r.gw.Select(ctx, "list parties", &parties, query); err != nil {
		return nil, err
	}
	return parties, nil
}

func (r *partyRepository) Create(ctx context.Context, in models.PartyInput) (*models.Party, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	party := &models.Party{}
	query := `
		INSERT INTO parties (name, contact, address, gstin)
		VALUES (?, ?, ?, ?)
		RETURNING ` + partyColumns
	if _, err := r.gw.Get(ctx, "insert party", party, query,
		in.Name,
		in.Contact,
		in.Address,
		in.GSTIN,
	); err != nil {
		return nil, err
	}
	return party, nil
}

func (r *partyRepository) Update(ctx context.Context, id int64, in models.PartyInput) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE parties
		SET name = ?,
		    contact = ?,
		    address = ?,
		    gstin = ?
		WHERE id = ?
	`
	rowsAffected, err := r.gw.Exec(ctx, "update party", query,
		in.Name,
		in.Contact,
		in.Address,
		in.GSTIN,
		id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Party not found")
	}
	return nil
}

func (r *partyRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.gw.Exec(ctx, "delete party", `DELETE FROM parties WHERE id = ?`, id)
	return err
}

func (r *partyRepository) SearchByChallanNumber(ctx context.Context, challanNumber string) (*models.PartyChallan, error) {
	challanNumber = strings.TrimSpace(challanNumber)
	if challanNumber == "" {
		return nil, apperr.Validation("challanNumber required")
	}

	row := &models.PartyChallan{}
	query := `
		SELECT p.id, p.name, p.contact, p.address, p.gstin, p.created_at,
		       c.challan_number, c.date AS challan_date, c.amount AS challan_amount, c.description
		FROM challans c
		JOIN parties p ON p.id = c.party_id
		WHERE c.challan_number = ?
		ORDER BY c.id DESC
		LIMIT 1
	`
	found, err := r.gw.Get(ctx, "search party by challan", row, query, challanNumber)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound("No party found for this challan number")
	}
	return row, nil
}
