package dto

type CreatePurchaseOrderDTO struct {
	Reference  string  `json:"reference" form:"reference" validate:"required,reference_code"`
	OrderDate  string  `json:"order_date" form:"order_date" validate:"required,datetime=2006-01-02"`
	SupplierID uint64  `json:"supplier_id" form:"supplier_id" validate:"required,gt=0"`
	Details    *string `json:"details,omitempty" form:"details" validate:"omitempty,max=2000"`
}

type UpdatePurchaseOrderDTO struct {
	Reference  *string `json:"reference,omitempty" form:"reference" validate:"omitempty,reference_code"`
	OrderDate  *string `json:"order_date,omitempty" form:"order_date" validate:"omitempty,datetime=2006-01-02"`
	SupplierID *uint64 `json:"supplier_id,omitempty" form:"supplier_id" validate:"omitempty,gt=0"`
	Details    *string `json:"details,omitempty" form:"details" validate:"omitempty,max=2000"`
	Status     *string `json:"status,omitempty" form:"status" validate:"omitempty,oneof=pending approved rejected"`
}

type PurchaseOrderDTO struct {
	ID           uint64           `json:"id"`
	Reference    string           `json:"reference"`
	OrderDate    string           `json:"order_date"`
	Supplier     ShortSupplierDTO `json:"supplier"`
	Details      *string          `json:"details,omitempty"`
	DocumentPath *string          `json:"document_path,omitempty"`
	Status       string           `json:"status"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}
