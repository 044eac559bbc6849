package dto

import (
	"rentals/shared/constant"
	"rentals/shared/model"
	"rentals/shared/timezone"
)

// Metadata is the audit trail of an entity. The modification pair is left
// out until somebody other than the creation stamp has touched it.
type Metadata struct {
	CreatedAt  string  `json:"created_at"`
	CreatedBy  string  `json:"created_by"`
	ModifiedAt *string `json:"modified_at,omitempty"`
	ModifiedBy *string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = timezone.Format(metadata.CreatedAt, constant.DateFormat)
	m.CreatedBy = metadata.CreatedBy
	m.ModifiedAt = nil
	m.ModifiedBy = nil

	if !metadata.ModifiedAt.After(metadata.CreatedAt) {
		return
	}

	modifiedAt := timezone.Format(metadata.ModifiedAt, constant.DateFormat)
	modifiedBy := metadata.ModifiedBy

	m.ModifiedAt = &modifiedAt
	m.ModifiedBy = &modifiedBy
}
