package contact

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrMissingFields is returned when name, email or message is absent.
	ErrMissingFields = errors.New("name, email and message are required")

	// ErrNotFound is returned when a message id does not exist.
	ErrNotFound = errors.New("contact message not found")

	// ErrInvalidStatus is returned for an unknown message status.
	ErrInvalidStatus = errors.New("unknown message status")
)

// Status is the triage state of a contact message.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusReplied  Status = "replied"
	StatusArchived Status = "archived"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusArchived:
		return true
	}
	return false
}

// Message is one contact-form submission.
type Message struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Status     Status     `json:"status"`
	AdminReply string     `json:"admin_reply"`
	RepliedAt  *time.Time `json:"replied_at"`
	RepliedBy  string     `json:"replied_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateMessageRequest is the public contact-form body.
type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks the required fields.
func (r *CreateMessageRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Message) == "" {
		return ErrMissingFields
	}
	return nil
}

// ReplyRequest is the admin reply body.
type ReplyRequest struct {
	ID        int64  `json:"id"`
	Reply     string `json:"reply"`
	RepliedBy string `json:"replied_by"`
}
