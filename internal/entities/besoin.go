package entities

import "hospital-system/pkg/types"

const (
	BesoinStatusPending  = "pending"
	BesoinStatusApproved = "approved"
	BesoinStatusRejected = "rejected"
)

// Besoin est une demande de ressources émise par un service.
type Besoin struct {
	ID            uint64   `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Description   string   `json:"description" db:"description"`
	Quantity      int      `json:"quantity" db:"quantity"`
	DepartmentID  uint64   `json:"department_id" db:"department_id"`
	Priority      string   `json:"priority" db:"priority"`
	Status        string   `json:"status" db:"status"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty" db:"estimated_cost"`

	types.BaseEntity

	Department *Department `json:"-" db:"-"`
}
