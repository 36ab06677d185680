package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mktrading-backend/apperr"
	"mktrading-backend/database"
	"mktrading-backend/database/dbtest"
	"mktrading-backend/models"
)

func ptr[T any](v T) *T { return &v }

func day(y, m, d int) models.Date {
	return models.DateOf(y, time.Month(m), d)
}

func mustParty(t *testing.T, gw *database.Gateway, name string) *models.Party {
	t.Helper()
	p, err := NewPartyRepository(gw).Create(context.Background(), models.PartyInput{Name: name})
	require.NoError(t, err)
	return p
}

func mustChallan(t *testing.T, gw *database.Gateway, number string, partyID int64, date models.Date, amount float64) *models.Challan {
	t.Helper()
	c, err := NewChallanRepository(gw).Create(context.Background(), models.ChallanInput{
		ChallanNumber: number,
		PartyID:       &partyID,
		Date:          date,
		Amount:        &amount,
	})
	require.NoError(t, err)
	return c
}

func assertValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr), "want validation error, got %v", err)
	assert.Equal(t, msg, verr.Message)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%acme%", containsPattern("ACME"))
	assert.Equal(t, `%50\% off%`, containsPattern("50% off"))
	assert.Equal(t, `%a\_b\\c%`, containsPattern(`a_b\c`))
}

func TestPartyRepositoryCRUD(t *testing.T) {
	gw := dbtest.New(t)
	repo := NewPartyRepository(gw)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.PartyInput{Name: "  Zenith  ", Contact: ptr(""), GSTIN: ptr("27AAAA")})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Zenith", created.Name)
	assert.Nil(t, created.Contact)
	require.NotNil(t, created.GSTIN)
	assert.Equal(t, "27AAAA", *created.GSTIN)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.Create(ctx, models.PartyInput{Name: "Acme"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, models.PartyInput{Name: "   "})
	assertValidation(t, err, "Party name required")

	parties, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, parties, 2)
	assert.Equal(t, "Acme", parties[0].Name)
	assert.Equal(t, "Zenith", parties[1].Name)

	require.NoError(t, repo.Update(ctx, created.ID, models.PartyInput{Name: "Zenith Traders", Address: ptr("Pune")}))
	parties, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Zenith Traders", parties[1].Name)
	require.NotNil(t, parties[1].Address)
	assert.Equal(t, "Pune", *parties[1].Address)
	assert.Nil(t, parties[1].GSTIN)

	err = repo.Update(ctx, 999, models.PartyInput{Name: "Ghost"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	err = repo.Update(ctx, created.ID, models.PartyInput{})
	assertValidation(t, err, "Party name required")

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, created.ID))
	parties, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, parties, 1)
}

func TestPartySearchByChallanNumber(t *testing.T) {
	gw := dbtest.New(t)
	repo := NewPartyRepository(gw)
	ctx := context.Background()

	acme := mustParty(t, gw, "Acme")
	mustChallan(t, gw, "C100", acme.ID, day(2024, 5, 10), 1000)

	got, err := repo.SearchByChallanNumber(ctx, " C100 ")
	require.NoError(t, err)
	assert.Equal(t, acme.ID, got.ID)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "C100", got.ChallanNumber)
	assert.Equal(t, "2024-05-10", got.ChallanDate.String())
	assert.Equal(t, 1000.0, got.ChallanAmount)

	_, err = repo.SearchByChallanNumber(ctx, "C999")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, "No party found for this challan number", apperr.PublicMessage(err))

	_, err = repo.SearchByChallanNumber(ctx, "  ")
	assertValidation(t, err, "challanNumber required")
}

func TestDeletingPartyDetachesChallansAndDropsPayments(t *testing.T) {
	gw := dbtest.New(t)
	ctx := context.Background()

	acme := mustParty(t, gw, "Acme")
	mustChallan(t, gw, "C1", acme.ID, day(2024, 1, 2), 50)
	_, err := NewPaymentRepository(gw).Create(ctx, models.PaymentInput{PartyID: &acme.ID, Amount: ptr(20.0)})
	require.NoError(t, err)

	require.NoError(t, NewPartyRepository(gw).Delete(ctx, acme.ID))

	challans, err := NewChallanRepository(gw).List(ctx)
	require.NoError(t, err)
	require.Len(t, challans, 1)
	assert.Nil(t, challans[0].PartyID)
	assert.Nil(t, challans[0].PartyName)

	payments, err := NewPaymentRepository(gw).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments)
}
