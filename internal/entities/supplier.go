package entities

import "hospital-system/pkg/types"

const (
	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"
)

// Supplier représente un fournisseur.
type Supplier struct {
	ID          uint64  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	ContactName *string `json:"contact_name,omitempty" db:"contact_name"`
	Email       *string `json:"email,omitempty" db:"email"`
	Phone       *string `json:"phone,omitempty" db:"phone"`
	Address     *string `json:"address,omitempty" db:"address"`
	TaxNumber   *string `json:"tax_number,omitempty" db:"tax_number"`
	Status      string  `json:"status" db:"status"`

	types.BaseEntity
}
