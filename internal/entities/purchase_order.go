package entities

import (
	"time"

	"hospital-system/pkg/types"
)

const (
	PurchaseOrderStatusPending  = "pending"
	PurchaseOrderStatusApproved = "approved"
	PurchaseOrderStatusRejected = "rejected"
)

// PurchaseOrder représente un bon de commande.
type PurchaseOrder struct {
	ID           uint64    `json:"id" db:"id"`
	Reference    string    `json:"reference" db:"reference"`
	OrderDate    time.Time `json:"order_date" db:"order_date"`
	SupplierID   uint64    `json:"supplier_id" db:"supplier_id"`
	Details      *string   `json:"details,omitempty" db:"details"`
	DocumentPath *string   `json:"document_path,omitempty" db:"document_path"`
	Status       string    `json:"status" db:"status"`

	types.BaseEntity

	Supplier *Supplier `json:"-" db:"-"`
}
