package entities

import "hospital-system/pkg/types"

// Attachment est un fichier joint à une réclamation; seul le chemin relatif
// est stocké en base, le fichier vit sur disque sous /uploads.
type Attachment struct {
	ID            uint64 `json:"id" db:"id"`
	ReclamationID uint64 `json:"reclamation_id" db:"reclamation_id"`
	UploaderID    uint64 `json:"uploader_id" db:"uploader_id"`
	FileName      string `json:"file_name" db:"file_name"`
	FilePath      string `json:"file_path" db:"file_path"`
	FileSize      int64  `json:"file_size" db:"file_size"`

	types.BaseEntity
}
