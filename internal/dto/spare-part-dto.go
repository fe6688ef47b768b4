package dto

type CreateSparePartDTO struct {
	Name         string  `json:"name" validate:"required,min=2,max=150"`
	PartNumber   string  `json:"part_number" validate:"required,reference_code"`
	CategoryID   *uint64 `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	SupplierID   *uint64 `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
	DepartmentID *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	PurchaseDate *string `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Price        float64 `json:"price" validate:"omitempty,gte=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=available unavailable"`
}

type UpdateSparePartDTO struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	PartNumber   *string  `json:"part_number,omitempty" validate:"omitempty,reference_code"`
	CategoryID   *uint64  `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	SupplierID   *uint64  `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
	DepartmentID *uint64  `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	PurchaseDate *string  `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=available unavailable"`
}

type SparePartDTO struct {
	ID           uint64              `json:"id"`
	Name         string              `json:"name"`
	PartNumber   string              `json:"part_number"`
	Category     *ShortCategoryDTO   `json:"category,omitempty"`
	Supplier     *ShortSupplierDTO   `json:"supplier,omitempty"`
	Department   *ShortDepartmentDTO `json:"department,omitempty"`
	PurchaseDate string              `json:"purchase_date,omitempty"`
	Price        float64             `json:"price"`
	Status       string              `json:"status"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}
