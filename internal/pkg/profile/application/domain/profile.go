package profile

import (
	"errors"
	"time"
)

// Domain-level errors for the registration workflow
var (
	ErrNotFound              = errors.New("profile: not found")
	ErrIncompleteProfile     = errors.New("profile: required fields are missing")
	ErrMissingDocuments      = errors.New("profile: required documents are missing")
	ErrInvalidApprovalStatus = errors.New("profile: invalid approval status")
	ErrNotApproved           = errors.New("profile: account is not approved")
)

// ApprovalStatus gates access to opportunity browsing.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ParseApprovalStatus validates a status string coming from the wire.
func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return ApprovalStatus(s), nil
	}
	return "", ErrInvalidApprovalStatus
}

// Profile is the business profile keyed by user id. ApprovalStatus and
// RegistrationCompleted drive the registration workflow:
// profile completion -> document upload -> admin approval gate.
type Profile struct {
	ID                    string         `db:"id"`
	FullName              string         `db:"full_name"`
	CompanyName           string         `db:"company_name"`
	Phone                 string         `db:"phone"`
	Bio                   string         `db:"bio"`
	BusinessType          string         `db:"business_type"`
	ServiceCategory       string         `db:"service_category"`
	YearsInBusiness       int            `db:"years_in_business"`
	ApprovalStatus        ApprovalStatus `db:"approval_status"`
	RegistrationCompleted bool           `db:"registration_completed"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
}

// FieldsComplete reports whether the fields every registration needs are
// filled in. Bio and years are optional.
func (p Profile) FieldsComplete() bool {
	return p.FullName != "" && p.CompanyName != "" && p.Phone != "" &&
		p.BusinessType != "" && p.ServiceCategory != ""
}
