package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", Validation("amount required"), http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create payment: %w", Validation("amount required")), http.StatusBadRequest},
		{"token", ErrInvalidToken, http.StatusUnauthorized},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found sentinel", ErrNotFound, http.StatusNotFound},
		{"not found message", NotFound("No party found for this challan number"), http.StatusNotFound},
		{"store", Store("list parties", errors.New("connection refused")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestPublicMessageHidesStoreDetail(t *testing.T) {
	err := Store("insert payment", errors.New(`pq: relation "payments" does not exist`))

	assert.Equal(t, "Database error", PublicMessage(err))
	assert.Contains(t, err.Error(), "relation")
}

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("search: %w", NotFound("No party found for this challan number"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "No party found for this challan number", PublicMessage(err))
}

func TestStoreNil(t *testing.T) {
	assert.NoError(t, Store("noop", nil))
}
