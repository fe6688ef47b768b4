package entities

import "hospital-system/pkg/types"

type User struct {
	ID        uint64 `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Username  string `json:"username" db:"username"`
	Email     string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	RoleID         uint64  `json:"role_id" db:"role_id"`
	DepartmentID   *uint64 `json:"department_id,omitempty" db:"department_id"`
	PhotoURL       *string `json:"photo_url,omitempty" db:"photo_url"`
	ScanningAccess bool    `json:"scanning_access" db:"scanning_access"`

	types.BaseEntity

	Role       *Role       `json:"-" db:"-"`
	Department *Department `json:"-" db:"-"`
}
