package dto

type CreateReclamationDTO struct {
	Title        string  `json:"title" validate:"required,min=3,max=150"`
	Description  string  `json:"description" validate:"required,min=3,max=2000"`
	Equipment    *string `json:"equipment,omitempty" validate:"omitempty,max=150"`
	DepartmentID uint64  `json:"department_id" validate:"required,gt=0"`
	Type         string  `json:"type" validate:"required,min=2,max=50"`
	Priority     string  `json:"priority" validate:"required,oneof=low medium high"`
}

type UpdateReclamationDTO struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description  *string `json:"description,omitempty" validate:"omitempty,min=3,max=2000"`
	Equipment    *string `json:"equipment,omitempty" validate:"omitempty,max=150"`
	DepartmentID *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	Type         *string `json:"type,omitempty" validate:"omitempty,min=2,max=50"`
	Priority     *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress resolved rejected"`
}

type ReclamationDTO struct {
	ID          uint64             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Equipment   *string            `json:"equipment,omitempty"`
	Department  ShortDepartmentDTO `json:"department"`
	Type        string             `json:"type"`
	Priority    string             `json:"priority"`
	Status      string             `json:"status"`
	CreatorID   *uint64            `json:"creator_id,omitempty"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

type CreateReclamationCommentDTO struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type ReclamationCommentDTO struct {
	ID            uint64       `json:"id"`
	ReclamationID uint64       `json:"reclamation_id"`
	Author        ShortUserDTO `json:"author"`
	Content       string       `json:"content"`
	CreatedAt     string       `json:"created_at"`
}

type ReclamationHistoryDTO struct {
	ID            uint64  `json:"id"`
	ReclamationID uint64  `json:"reclamation_id"`
	UserID        *uint64 `json:"user_id,omitempty"`
	Action        string  `json:"action"`
	OldStatus     *string `json:"old_status,omitempty"`
	NewStatus     *string `json:"new_status,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type AttachmentDTO struct {
	ID            uint64 `json:"id"`
	ReclamationID uint64 `json:"reclamation_id"`
	UploaderID    uint64 `json:"uploader_id"`
	FileName      string `json:"file_name"`
	FilePath      string `json:"file_path"`
	FileSize      int64  `json:"file_size"`
	CreatedAt     string `json:"created_at"`
}
