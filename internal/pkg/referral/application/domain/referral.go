package referral

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyFriendName = errors.New("referral: friend name is required")
	ErrInvalidEmail    = errors.New("referral: a valid friend email is required")
	ErrEmptyTitle      = errors.New("referral: event title is required")
)

// Referral records a friend a user invited to the platform.
type Referral struct {
	ID          string    `db:"id"`
	ReferrerID  string    `db:"referrer_id"`
	FriendName  string    `db:"friend_name"`
	FriendEmail string    `db:"friend_email"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *Referral) Validate() error {
	r.FriendName = strings.TrimSpace(r.FriendName)
	r.FriendEmail = strings.TrimSpace(strings.ToLower(r.FriendEmail))
	if r.FriendName == "" {
		return ErrEmptyFriendName
	}
	if r.FriendEmail == "" || !strings.Contains(r.FriendEmail, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// CompletedEvent is a past engagement a user lists on their profile.
type CompletedEvent struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	EventDate time.Time `db:"event_date"`
	CreatedAt time.Time `db:"created_at"`
}

func (e *CompletedEvent) Validate() error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}
