package opportunity

import (
	"errors"
	"time"
)

// Domain-level errors for the browse/apply flow
var (
	ErrNotFound       = errors.New("opportunity: not found")
	ErrClosed         = errors.New("opportunity: no longer accepting applications")
	ErrNotApproved    = errors.New("opportunity: account is not approved for browsing")
	ErrInvalidStatus  = errors.New("opportunity: invalid status")
	ErrAppNotFound    = errors.New("opportunity: application not found")
	ErrInvalidAppStep = errors.New("opportunity: invalid application status")
)

// Status of an event posting.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// ParseStatus validates a posting status from the wire.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusClosed:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// ApplicationStatus tracks an application through review.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationDeclined ApplicationStatus = "declined"
)

// ParseApplicationStatus validates an application status from the wire.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case ApplicationPending, ApplicationAccepted, ApplicationDeclined:
		return ApplicationStatus(s), nil
	}
	return "", ErrInvalidAppStep
}

// Opportunity is an event posting a vendor or chef may apply to.
type Opportunity struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	EventDate   time.Time `db:"event_date"`
	Location    string    `db:"location"`
	PayRate     string    `db:"pay_rate"`
	Status      Status    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

// Application links a user to an opportunity. Unique per
// (opportunity_id, user_id), which makes apply idempotent.
type Application struct {
	ID            string            `db:"id"`
	OpportunityID string            `db:"opportunity_id"`
	UserID        string            `db:"user_id"`
	Status        ApplicationStatus `db:"status"`
	AppliedAt     time.Time         `db:"applied_at"`
}
