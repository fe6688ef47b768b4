package entities

import (
	"time"

	"hospital-system/pkg/types"
)

const (
	EquipmentStatusOperational = "operational"
	EquipmentStatusDown        = "down"

	WarrantyValid   = "valid"
	WarrantyExpired = "expired"
)

type Equipment struct {
	ID             uint64     `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	CategoryID     uint64     `json:"category_id" db:"category_id"`
	ModelID        *uint64    `json:"model_id,omitempty" db:"model_id"`
	SerialNumber   string     `json:"serial_number" db:"serial_number"`
	Status         string     `json:"status" db:"status"`
	WarrantyStatus string     `json:"warranty_status" db:"warranty_status"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty" db:"purchase_date"`
	Price          float64    `json:"price" db:"price"`
	DepartmentID   *uint64    `json:"department_id,omitempty" db:"department_id"`
	SupplierID     *uint64    `json:"supplier_id,omitempty" db:"supplier_id"`

	types.BaseEntity

	// Données liées, pas des colonnes de la table.
	Category   *Category       `json:"-" db:"-"`
	Model      *EquipmentModel `json:"-" db:"-"`
	Department *Department     `json:"-" db:"-"`
	Supplier   *Supplier       `json:"-" db:"-"`
}
