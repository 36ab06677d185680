package models

import (
	"strings"
	"time"
)

// Party is a customer or vendor in the ledger.
type Party struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Contact   *string   `json:"contact"`
	Address   *string   `json:"address"`
	GSTIN     *string   `gorm:"column:gstin" json:"gstin"`
	CreatedAt time.Time `json:"created_at"`
}

// PartyInput is the editable part of a Party, used for create and full replace.
type PartyInput struct {
	Name    string  `json:"name" validate:"required"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
	GSTIN   *string `json:"gstin"`
}

// Normalize trims the name and turns blank optional fields into NULLs.
func (in *PartyInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Contact = trimmed(in.Contact)
	in.Address = trimmed(in.Address)
	in.GSTIN = trimmed(in.GSTIN)
}

func (in PartyInput) Validate() error {
	return validateInput(in, "Party name required")
}

// PartyChallan is a party joined with one of its challans.
type PartyChallan struct {
	Party
	ChallanNumber string  `json:"challan_number"`
	ChallanDate   Date    `json:"challan_date"`
	ChallanAmount float64 `json:"challan_amount"`
	Description   *string `json:"description"`
}
