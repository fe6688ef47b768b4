package dto

type CreateInternalRepairDTO struct {
	EquipmentID uint64  `json:"equipment_id" validate:"required,gt=0"`
	SparePartID *uint64 `json:"spare_part_id,omitempty" validate:"omitempty,gt=0"`
	Description string  `json:"description" validate:"required,min=3,max=2000"`
	DateAdded   string  `json:"date_added" validate:"required,datetime=2006-01-02"`
}

type UpdateInternalRepairDTO struct {
	EquipmentID  *uint64 `json:"equipment_id,omitempty" validate:"omitempty,gt=0"`
	SparePartID  *uint64 `json:"spare_part_id,omitempty" validate:"omitempty,gt=0"`
	Description  *string `json:"description,omitempty" validate:"omitempty,min=3,max=2000"`
	DateAdded    *string `json:"date_added,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateRepaired *string `json:"date_repaired,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=pending completed"`
}

type InternalRepairDTO struct {
	ID           uint64            `json:"id"`
	Equipment    ShortEquipmentDTO `json:"equipment"`
	SparePartID  *uint64           `json:"spare_part_id,omitempty"`
	Description  string            `json:"description"`
	DateAdded    string            `json:"date_added"`
	DateRepaired string            `json:"date_repaired,omitempty"`
	Status       string            `json:"status"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}
