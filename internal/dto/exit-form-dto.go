package dto

type CreateExitFormDTO struct {
	Reference    string   `json:"reference" form:"reference" validate:"required,reference_code"`
	Date         string   `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Description  *string  `json:"description,omitempty" form:"description" validate:"omitempty,max=2000"`
	EquipmentIDs []uint64 `json:"equipment_ids" form:"equipment_ids" validate:"required,min=1,dive,gt=0"`
}

type UpdateExitFormDTO struct {
	Reference    *string  `json:"reference,omitempty" form:"reference" validate:"omitempty,reference_code"`
	Date         *string  `json:"date,omitempty" form:"date" validate:"omitempty,datetime=2006-01-02"`
	Description  *string  `json:"description,omitempty" form:"description" validate:"omitempty,max=2000"`
	Status       *string  `json:"status,omitempty" form:"status" validate:"omitempty,oneof=pending approved rejected"`
	EquipmentIDs []uint64 `json:"equipment_ids,omitempty" form:"equipment_ids" validate:"omitempty,min=1,dive,gt=0"`
}

type ExitFormDTO struct {
	ID           uint64              `json:"id"`
	Reference    string              `json:"reference"`
	Date         string              `json:"date"`
	Description  *string             `json:"description,omitempty"`
	DocumentPath *string             `json:"document_path,omitempty"`
	Status       string              `json:"status"`
	Equipments   []ShortEquipmentDTO `json:"equipments"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}
