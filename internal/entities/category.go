package entities

import "hospital-system/pkg/types"

type Category struct {
	ID          uint64  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`

	types.BaseEntity
}
