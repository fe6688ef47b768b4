package dto

type CreateRoleDTO struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type UpdateRoleDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
}

type RoleDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
