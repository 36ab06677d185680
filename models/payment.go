package models

import "time"

// Payment is money received from a party.
type Payment struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	PartyID     int64     `json:"party_id"`
	Amount      float64   `json:"amount"`
	PaymentDate Date      `json:"payment_date"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaymentRow struct {
	Payment
	PartyName *string `json:"party_name"`
}

type PaymentInput struct {
	PartyID     *int64   `json:"party_id" validate:"required,gt=0"`
	Amount      *float64 `json:"amount" validate:"required"`
	PaymentDate Date     `json:"payment_date"`
	Notes       *string  `json:"notes"`
}

func (in *PaymentInput) Normalize() {
	in.Notes = trimmed(in.Notes)
}

func (in PaymentInput) Validate() error {
	return validateInput(in, "party_id and amount required")
}
