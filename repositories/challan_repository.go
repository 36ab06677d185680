package repositories

import (
	"context"
	"strconv"
	"strings"

	"mktrading-backend/apperr"
	"mktrading-backend/database"
	"mktrading-backend/models"
)

type ChallanRepository interface {
	List(ctx context.Context) ([]models.ChallanRow, error)
	Create(ctx context.Context, in models.ChallanInput) (*models.Challan, error)
	Update(ctx context.Context, id int64, in models.ChallanInput) error
	Delete(ctx context.Context, id int64) error
	SearchByParty(ctx context.Context, filter models.ChallanPartyFilter) ([]models.ChallanRow, error)
}

type challanRepository struct {
	gw *database.Gateway
}

func NewChallanRepository(gw *database.Gateway) ChallanRepository {
	return &challanRepository{gw: gw}
}

const challanColumns = `id, challan_number, party_id, date, amount, description, created_at`

const challanRowSelect = `
	SELECT c.id, c.challan_number, c.party_id, c.date, c.amount, c.description, c.created_at,
	       p.name AS party_name, p.contact AS party_contact
	FROM challans c
	LEFT JOIN parties p ON p.id = c.party_id
`

func (r *challanRepository) List(ctx context.Context) ([]models.ChallanRow, error) {
	challans := []models.ChallanRow{}
	query := challanRowSelect + ` ORDER BY c.created_at DESC, c.id DESC`
	if err := r.gw.Select(ctx, "list challans", &challans, query); err != nil {
		return nil, err
	}
	return challans, nil
}

func (r *challanRepository) Create(ctx context.Context, in models.ChallanInput) (*models.Challan, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	challan := &models.Challan{}
	query := `
		INSERT INTO challans (challan_number, party_id, date, amount, description)
		VALUES (?, ?, ?, ?, ?)
		RETURNING ` + challanColumns
	if _, err := r.gw.Get(ctx, "insert challan", challan, query,
		in.ChallanNumber,
		in.PartyID,
		in.Date,
		in.Amount,
		in.Description,
	); err != nil {
		return nil, err
	}
	return challan, nil
}

func (r *challanRepository) Update(ctx context.Context, id int64, in models.ChallanInput) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE challans
		SET challan_number = ?,
		    party_id = ?,
		    date = ?,
		    amount = ?,
		    description = ?
		WHERE id = ?
	`
	rowsAffected, err := r.gw.Exec(ctx, "update challan", query,
		in.ChallanNumber,
		in.PartyID,
		in.Date,
		in.Amount,
		in.Description,
		id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Challan not found")
	}
	return nil
}

func (r *challanRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.gw.Exec(ctx, "delete challan", `DELETE FROM challans WHERE id = ?`, id)
	return err
}

// SearchByParty matches challans by exact party id or by a case-insensitive
// substring of the party name. Exactly one of the two must be given.
func (r *challanRepository) SearchByParty(ctx context.Context, filter models.ChallanPartyFilter) ([]models.ChallanRow, error) {
	partyID := strings.TrimSpace(filter.PartyID)
	partyName := strings.TrimSpace(filter.PartyName)

	var (
		where string
		arg   interface{}
	)
	switch {
	case partyID == "" && partyName == "":
		return nil, apperr.Validation("partyId or partyName required")
	case partyID != "" && partyName != "":
		return nil, apperr.Validation("provide either partyId or partyName, not both")
	case partyID != "":
		id, err := strconv.ParseInt(partyID, 10, 64)
		if err != nil {
			return nil, apperr.Validation("partyId must be a number")
		}
		where, arg = `WHERE c.party_id = ?`, id
	default:
		where, arg = `WHERE LOWER(p.name) LIKE ? ESCAPE '\'`, containsPattern(partyName)
	}

	challans := []models.ChallanRow{}
	query := challanRowSelect + where + ` ORDER BY c.date DESC NULLS LAST, c.id DESC`
	if err := r.gw.Select(ctx, "search challans by party", &challans, query, arg); err != nil {
		return nil, err
	}
	return challans, nil
}
