package dto

import (
	"encore/shared/constant"
	"encore/shared/model"
	"encore/shared/timezone"
	"time"
)

// Metadata is the audit block of a response. Imported legacy documents can lack
// timestamps, which are then left out instead of rendering as year one.
type Metadata struct {
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = formatAudit(model.CreatedAt)
	m.ModifiedAt = formatAudit(model.ModifiedAt)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}

func formatAudit(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}
