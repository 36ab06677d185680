package models

import (
	"strings"
	"time"
)

type Employee struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Contact     *string   `json:"contact"`
	Role        *string   `json:"role"`
	JoiningDate Date      `json:"joining_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type EmployeeInput struct {
	Name        string  `json:"name" validate:"required"`
	Contact     *string `json:"contact"`
	Role        *string `json:"role"`
	JoiningDate Date    `json:"joining_date"`
}

func (in *EmployeeInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Contact = trimmed(in.Contact)
	in.Role = trimmed(in.Role)
}

func (in EmployeeInput) Validate() error {
	return validateInput(in, "Employee name required")
}
