package entities

import (
	"time"

	"hospital-system/pkg/types"
)

const (
	SparePartStatusAvailable   = "available"
	SparePartStatusUnavailable = "unavailable"
)

type SparePart struct {
	ID           uint64     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	PartNumber   string     `json:"part_number" db:"part_number"`
	CategoryID   *uint64    `json:"category_id,omitempty" db:"category_id"`
	SupplierID   *uint64    `json:"supplier_id,omitempty" db:"supplier_id"`
	DepartmentID *uint64    `json:"department_id,omitempty" db:"department_id"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty" db:"purchase_date"`
	Price        float64    `json:"price" db:"price"`
	Status       string     `json:"status" db:"status"`

	types.BaseEntity

	Category   *Category   `json:"-" db:"-"`
	Supplier   *Supplier   `json:"-" db:"-"`
	Department *Department `json:"-" db:"-"`
}
