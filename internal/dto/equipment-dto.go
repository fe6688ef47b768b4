package dto

type CreateEquipmentDTO struct {
	Name           string  `json:"name" validate:"required,min=2,max=150"`
	CategoryID     uint64  `json:"category_id" validate:"required,gt=0"`
	ModelID        *uint64 `json:"model_id,omitempty" validate:"omitempty,gt=0"`
	SerialNumber   string  `json:"serial_number" validate:"required,serial_number"`
	Status         string  `json:"status" validate:"omitempty,oneof=operational down"`
	WarrantyStatus string  `json:"warranty_status" validate:"omitempty,oneof=valid expired"`
	PurchaseDate   *string `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Price          float64 `json:"price" validate:"omitempty,gte=0"`
	DepartmentID   *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	SupplierID     *uint64 `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdateEquipmentDTO struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	CategoryID     *uint64  `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	ModelID        *uint64  `json:"model_id,omitempty" validate:"omitempty,gt=0"`
	SerialNumber   *string  `json:"serial_number,omitempty" validate:"omitempty,serial_number"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,oneof=operational down"`
	WarrantyStatus *string  `json:"warranty_status,omitempty" validate:"omitempty,oneof=valid expired"`
	PurchaseDate   *string  `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	DepartmentID   *uint64  `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	SupplierID     *uint64  `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
}

type EquipmentDTO struct {
	ID             uint64              `json:"id"`
	Name           string              `json:"name"`
	Category       ShortCategoryDTO    `json:"category"`
	Model          *ShortModelDTO      `json:"model,omitempty"`
	SerialNumber   string              `json:"serial_number"`
	Status         string              `json:"status"`
	WarrantyStatus string              `json:"warranty_status"`
	PurchaseDate   string              `json:"purchase_date,omitempty"`
	Price          float64             `json:"price"`
	Department     *ShortDepartmentDTO `json:"department,omitempty"`
	Supplier       *ShortSupplierDTO   `json:"supplier,omitempty"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
}
