package dto

type CreateEquipmentModelDTO struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	CategoryID   uint64  `json:"category_id" validate:"required,gt=0"`
	Manufacturer *string `json:"manufacturer,omitempty" validate:"omitempty,max=100"`
}

type UpdateEquipmentModelDTO struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	CategoryID   *uint64 `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	Manufacturer *string `json:"manufacturer,omitempty" validate:"omitempty,max=100"`
}

type EquipmentModelDTO struct {
	ID           uint64           `json:"id"`
	Name         string           `json:"name"`
	Category     ShortCategoryDTO `json:"category"`
	Manufacturer *string          `json:"manufacturer,omitempty"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}
