package notification

import (
	"errors"
	"time"
	"unicode/utf8"
)

const (
	MaxTitleLength = 200
	MaxBodyLength  = 1000
)

var (
	ErrInvalidPlatform = errors.New("notification: platform must be android or ios")
	ErrEmptyTitle      = errors.New("notification: title is required")
	ErrTitleTooLong    = errors.New("notification: title exceeds 200 characters")
	ErrEmptyBody       = errors.New("notification: body is required")
	ErrBodyTooLong     = errors.New("notification: body exceeds 1000 characters")
	ErrNoTarget        = errors.New("notification: either user_ids or target_role is required")
)

// Platform identifies the device OS a push token belongs to. Delivery goes
// through FCM for android; ios tokens are recorded but routed elsewhere.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformAndroid, PlatformIOS:
		return Platform(s), nil
	}
	return "", ErrInvalidPlatform
}

// PushToken is one device registration. A device re-registering with the
// same token refreshes the platform and timestamp instead of duplicating.
type PushToken struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Token     string    `db:"token"`
	Platform  Platform  `db:"platform"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ValidateContent enforces the title and body limits shared by every push
// path. Limits count characters, not bytes.
func ValidateContent(title, body string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if body == "" {
		return ErrEmptyBody
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}
