package dto

type CreateUserDTO struct {
	FirstName      string  `json:"first_name" validate:"required,min=2,max=100"`
	LastName       string  `json:"last_name" validate:"required,min=2,max=100"`
	Username       string  `json:"username" validate:"required,min=3,max=50"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8"`
	RoleID         uint64  `json:"role_id" validate:"required,gt=0"`
	DepartmentID   *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	ScanningAccess bool    `json:"scanning_access"`
}

type UpdateUserDTO struct {
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,min=2,max=100"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,min=2,max=100"`
	Username       *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Password       *string `json:"password,omitempty" validate:"omitempty,min=8"`
	RoleID         *uint64 `json:"role_id,omitempty" validate:"omitempty,gt=0"`
	DepartmentID   *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	ScanningAccess *bool   `json:"scanning_access,omitempty"`
}

type UserDTO struct {
	ID             uint64              `json:"id"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	Username       string              `json:"username"`
	Email          string              `json:"email"`
	Role           ShortRoleDTO        `json:"role"`
	Department     *ShortDepartmentDTO `json:"department,omitempty"`
	PhotoURL       *string             `json:"photo_url,omitempty"`
	ScanningAccess bool                `json:"scanning_access"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
}
