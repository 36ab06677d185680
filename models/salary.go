package models

import "time"

// Salary is one payout to an employee, usually for a month/year period.
type Salary struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Month      *int      `json:"month"`
	Year       *int      `json:"year"`
	Amount     float64   `json:"amount"`
	PaidDate   Date      `json:"paid_date"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

type SalaryRow struct {
	Salary
	EmployeeName *string `json:"employee_name"`
}

type SalaryInput struct {
	EmployeeID *int64   `json:"employee_id" validate:"required,gt=0"`
	Month      *int     `json:"month" validate:"omitempty,min=1,max=12"`
	Year       *int     `json:"year" validate:"omitempty,min=1900,max=9999"`
	Amount     *float64 `json:"amount" validate:"required"`
	PaidDate   Date     `json:"paid_date"`
	Notes      *string  `json:"notes"`
}

func (in *SalaryInput) Normalize() {
	in.Notes = trimmed(in.Notes)
}

func (in SalaryInput) Validate() error {
	return validateInput(in, "employee_id and amount required")
}
