package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressModel is the GORM model for the reading_progress table.
// UserID is the primary key: one progress row per user.
type ProgressModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Page      int       `gorm:"not null"`
	Chapter   string    `gorm:"size:255"`
	UpdatedAt time.Time
}

// TableName overrides the GORM default table name.
func (ProgressModel) TableName() string {
	return "reading_progress"
}
