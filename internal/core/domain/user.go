package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleManager   UserRole = "manager"
	RoleDeveloper UserRole = "developer"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDeveloper:
		return true
	}
	return false
}

// RFC-lite: ASCII local part, dot-separated domain labels, TLD of at least
// two letters. Intentionally stricter than the full RFC 5322 grammar.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// User is a value snapshot of a persisted row, not a live reference.
type User struct {
	ID               int64
	Username         string
	Email            string
	Role             UserRole
	RegistrationDate time.Time
}

// NewUser validates the fields and stamps the registration date. The
// registration date is immutable afterwards: UpdateUserInput has no field
// for it.
func NewUser(username, email string, role UserRole) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}
	if !ValidEmail(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	return &User{
		Username:         username,
		Email:            email,
		Role:             role,
		RegistrationDate: time.Now().UTC(),
	}, nil
}

type CreateUserInput struct {
	Username string   `validate:"notblank"`
	Email    string   `validate:"required,rfcemail"`
	Role     UserRole `validate:"oneof=admin manager developer"`
}

// UpdateUserInput applies only the fields that are non-nil.
type UpdateUserInput struct {
	Username *string   `validate:"omitempty,notblank"`
	Email    *string   `validate:"omitempty,rfcemail"`
	Role     *UserRole `validate:"omitempty,oneof=admin manager developer"`
}

func (in UpdateUserInput) IsEmpty() bool {
	return in.Username == nil && in.Email == nil && in.Role == nil
}
