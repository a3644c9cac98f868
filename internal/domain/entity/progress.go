package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReadingProgress records where a user left off. One row per user, the
// latest save wins.
type ReadingProgress struct {
	UserID    uuid.UUID
	Page      int // 1-based page number, always positive.
	Chapter   string
	UpdatedAt time.Time
}
