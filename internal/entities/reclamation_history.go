package entities

import "hospital-system/pkg/types"

// ReclamationHistory trace chaque changement d'état d'une réclamation.
type ReclamationHistory struct {
	ID            uint64  `json:"id" db:"id"`
	ReclamationID uint64  `json:"reclamation_id" db:"reclamation_id"`
	UserID        *uint64 `json:"user_id,omitempty" db:"user_id"`
	Action        string  `json:"action" db:"action"`
	OldStatus     *string `json:"old_status,omitempty" db:"old_status"`
	NewStatus     *string `json:"new_status,omitempty" db:"new_status"`

	types.BaseEntity
}
