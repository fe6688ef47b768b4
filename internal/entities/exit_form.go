package entities

import (
	"time"

	"hospital-system/pkg/types"
)

const (
	ExitFormStatusPending  = "pending"
	ExitFormStatusApproved = "approved"
	ExitFormStatusRejected = "rejected"
)

// ExitForm est un bon de sortie; les équipements concernés sont liés via la
// table de jointure exit_form_equipments.
type ExitForm struct {
	ID           uint64    `json:"id" db:"id"`
	Reference    string    `json:"reference" db:"reference"`
	Date         time.Time `json:"date" db:"date"`
	Description  *string   `json:"description,omitempty" db:"description"`
	DocumentPath *string   `json:"document_path,omitempty" db:"document_path"`
	Status       string    `json:"status" db:"status"`

	types.BaseEntity

	EquipmentIDs []uint64    `json:"equipment_ids" db:"-"`
	Equipments   []Equipment `json:"-" db:"-"`
}
