// Package response defines the JSON payloads returned to clients.
// User payloads never carry the stored credential.
package response

import (
	"time"

	"bookmark/internal/domain/entity"
)

// UserPayload is the client-facing projection of a user record.
type UserPayload struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserPayload maps a domain user onto the client payload.
func NewUserPayload(user *entity.User) *UserPayload {
	return &UserPayload{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ProgressPayload is the client-facing projection of reading progress.
type ProgressPayload struct {
	Page      int       `json:"page"`
	Chapter   string    `json:"chapter,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProgressPayload maps domain reading progress onto the client payload.
func NewProgressPayload(progress *entity.ReadingProgress) *ProgressPayload {
	return &ProgressPayload{
		Page:      progress.Page,
		Chapter:   progress.Chapter,
		UpdatedAt: progress.UpdatedAt,
	}
}

// UserEnvelope wraps a user payload with a human-readable message.
type UserEnvelope struct {
	Message string       `json:"message,omitempty"`
	User    *UserPayload `json:"user"`
}

// ProgressEnvelope wraps a progress payload with a human-readable message.
type ProgressEnvelope struct {
	Message  string           `json:"message,omitempty"`
	Progress *ProgressPayload `json:"progress"`
}

// MessageBody is a bare message response.
type MessageBody struct {
	Message string `json:"message"`
}

// HealthBody is the health check response.
type HealthBody struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}
