package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthUserDTO est l'instantané utilisateur renvoyé au client après login et
// par /auth/me. C'est la seule source de vérité pour la session côté client.
type AuthUserDTO struct {
	ID             uint64              `json:"id"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	Username       string              `json:"username"`
	Email          string              `json:"email"`
	Role           ShortRoleDTO        `json:"role"`
	Department     *ShortDepartmentDTO `json:"department,omitempty"`
	PhotoURL       *string             `json:"photo_url,omitempty"`
	ScanningAccess bool                `json:"scanning_access"`
}

type LoginResponseDTO struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         AuthUserDTO `json:"user"`
}
