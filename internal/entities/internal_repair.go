package entities

import (
	"time"

	"hospital-system/pkg/types"
)

const (
	RepairStatusPending   = "pending"
	RepairStatusCompleted = "completed"
)

type InternalRepair struct {
	ID           uint64     `json:"id" db:"id"`
	EquipmentID  uint64     `json:"equipment_id" db:"equipment_id"`
	SparePartID  *uint64    `json:"spare_part_id,omitempty" db:"spare_part_id"`
	Description  string     `json:"description" db:"description"`
	DateAdded    time.Time  `json:"date_added" db:"date_added"`
	DateRepaired *time.Time `json:"date_repaired,omitempty" db:"date_repaired"`
	Status       string     `json:"status" db:"status"`

	types.BaseEntity

	Equipment *Equipment `json:"-" db:"-"`
	SparePart *SparePart `json:"-" db:"-"`
}
