package entities

import "hospital-system/pkg/types"

type EquipmentModel struct {
	ID           uint64  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	CategoryID   uint64  `json:"category_id" db:"category_id"`
	Manufacturer *string `json:"manufacturer,omitempty" db:"manufacturer"`

	types.BaseEntity

	Category *Category `json:"-" db:"-"`
}
