package dto

import "github.com/aarondl/null/v8"

type CreateBesoinDTO struct {
	Title         string       `json:"title" validate:"required,min=3,max=150"`
	Description   string       `json:"description" validate:"required,min=3,max=2000"`
	Quantity      int          `json:"quantity" validate:"required,gt=0"`
	DepartmentID  uint64       `json:"department_id" validate:"required,gt=0"`
	Priority      string       `json:"priority" validate:"required,oneof=low medium high"`
	EstimatedCost null.Float64 `json:"estimated_cost"`
}

type UpdateBesoinDTO struct {
	Title         *string      `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description   *string      `json:"description,omitempty" validate:"omitempty,min=3,max=2000"`
	Quantity      *int         `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	DepartmentID  *uint64      `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	Priority      *string      `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Status        *string      `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	EstimatedCost null.Float64 `json:"estimated_cost"`
}

type BesoinDTO struct {
	ID            uint64             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Quantity      int                `json:"quantity"`
	Department    ShortDepartmentDTO `json:"department"`
	Priority      string             `json:"priority"`
	Status        string             `json:"status"`
	EstimatedCost *float64           `json:"estimated_cost,omitempty"`
	CreatedAt     string             `json:"created_at"`
	UpdatedAt     string             `json:"updated_at"`
}
