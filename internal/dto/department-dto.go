package dto

type CreateDepartmentDTO struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateDepartmentDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
}

type DepartmentDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
