// Package model contains the GORM persistence models. They are mapped to and
// from pure domain entities at the repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM model for the users table. The unique index on email
// lets the database enforce one-account-per-email atomically with the insert.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"size:255"`
	LastName     string    `gorm:"size:255"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:512;not null"`
	CreatedAt    time.Time
}

// TableName overrides the GORM default table name.
func (UserModel) TableName() string {
	return "users"
}
