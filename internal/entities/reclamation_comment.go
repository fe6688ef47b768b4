package entities

import "hospital-system/pkg/types"

// ReclamationComment est une note ajoutée à une réclamation; enregistrement
// en ajout seul, jamais modifié.
type ReclamationComment struct {
	ID            uint64 `json:"id" db:"id"`
	ReclamationID uint64 `json:"reclamation_id" db:"reclamation_id"`
	AuthorID      uint64 `json:"author_id" db:"author_id"`
	Content       string `json:"content" db:"content"`

	types.BaseEntity

	Author *User `json:"-" db:"-"`
}
