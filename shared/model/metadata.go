package model

import (
	"time"

	"rentals/shared/timezone"
)

type Metadata struct {
	CreatedAt  time.Time
	ModifiedAt time.Time
	CreatedBy  string
	ModifiedBy string
}

// NewMetadata stamps a freshly created entity.
func NewMetadata(actorID string) Metadata {
	now := timezone.Now()

	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  actorID,
		ModifiedBy: actorID,
	}
}

// Touch records a modification by actorID.
func (m *Metadata) Touch(actorID string) {
	m.ModifiedAt = timezone.Now()
	m.ModifiedBy = actorID
}
