package entities

import "hospital-system/pkg/types"

const (
	ReclamationStatusPending    = "pending"
	ReclamationStatusInProgress = "in_progress"
	ReclamationStatusResolved   = "resolved"
	ReclamationStatusRejected   = "rejected"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Reclamation représente une réclamation sur un équipement.
type Reclamation struct {
	ID           uint64  `json:"id" db:"id"`
	Title        string  `json:"title" db:"title"`
	Description  string  `json:"description" db:"description"`
	Equipment    *string `json:"equipment,omitempty" db:"equipment"`
	DepartmentID uint64  `json:"department_id" db:"department_id"`
	Type         string  `json:"type" db:"type"`
	Priority     string  `json:"priority" db:"priority"`
	Status       string  `json:"status" db:"status"`
	CreatorID    *uint64 `json:"creator_id,omitempty" db:"creator_id"`

	types.BaseEntity

	Department *Department `json:"-" db:"-"`
}
