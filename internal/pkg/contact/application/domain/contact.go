package contact

import (
	"errors"
	"strings"
	"time"
)

const (
	MaxNameLength    = 100
	MaxEmailLength   = 255
	MaxMessageLength = 1000
)

var (
	ErrEmptyName      = errors.New("contact: name is required")
	ErrNameTooLong    = errors.New("contact: name exceeds 100 characters")
	ErrInvalidEmail   = errors.New("contact: a valid email is required")
	ErrEmptyMessage   = errors.New("contact: message is required")
	ErrMessageTooLong = errors.New("contact: message exceeds 1000 characters")
)

// Submission is one contact-form entry, kept for the support team.
type Submission struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// Validate normalizes and checks the form fields in place.
func (s *Submission) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(strings.ToLower(s.Email))
	s.Message = strings.TrimSpace(s.Message)

	if s.Name == "" {
		return ErrEmptyName
	}
	if len(s.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if s.Email == "" || len(s.Email) > MaxEmailLength || !strings.Contains(s.Email, "@") {
		return ErrInvalidEmail
	}
	if s.Message == "" {
		return ErrEmptyMessage
	}
	if len(s.Message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
