package models

import (
	"strings"
	"time"
)

// Challan is a delivery note recording an amount owed by a party.
type Challan struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	ChallanNumber string    `json:"challan_number"`
	PartyID       *int64    `json:"party_id"`
	Date          Date      `json:"date"`
	Amount        float64   `json:"amount"`
	Description   *string   `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// ChallanRow is a challan as listed, with its party's display fields.
type ChallanRow struct {
	Challan
	PartyName    *string `json:"party_name"`
	PartyContact *string `json:"party_contact,omitempty"`
}

type ChallanInput struct {
	ChallanNumber string   `json:"challan_number" validate:"required"`
	PartyID       *int64   `json:"party_id" validate:"required,gt=0"`
	Date          Date     `json:"date"`
	Amount        *float64 `json:"amount"`
	Description   *string  `json:"description"`
}

func (in *ChallanInput) Normalize() {
	in.ChallanNumber = strings.TrimSpace(in.ChallanNumber)
	in.Description = trimmed(in.Description)
	if in.Amount == nil {
		zero := 0.0
		in.Amount = &zero
	}
}

func (in ChallanInput) Validate() error {
	return validateInput(in, "challan_number and party_id required")
}

// ChallanPartyFilter selects challans by exactly one of party id or name.
type ChallanPartyFilter struct {
	PartyID   string
	PartyName string
}
