package dto

type CreateSupplierDTO struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	ContactName *string `json:"contact_name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,phone_number"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=255"`
	TaxNumber   *string `json:"tax_number,omitempty" validate:"omitempty,max=50"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateSupplierDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	ContactName *string `json:"contact_name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,phone_number"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=255"`
	TaxNumber   *string `json:"tax_number,omitempty" validate:"omitempty,max=50"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type SupplierDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	TaxNumber   *string `json:"tax_number,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
