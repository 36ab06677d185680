package models

import "time"

type OfficeExpense struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Amount      float64   `json:"amount"`
	Date        Date      `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type OfficeExpenseInput struct {
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount" validate:"required"`
	Date        Date     `json:"date"`
}

func (in *OfficeExpenseInput) Normalize() {
	in.Category = trimmed(in.Category)
	in.Description = trimmed(in.Description)
}

func (in OfficeExpenseInput) Validate() error {
	return validateInput(in, "amount required")
}
