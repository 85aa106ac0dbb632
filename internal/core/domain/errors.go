package domain

import "errors"

// ErrValidation is the root of the validation-class error tree. Referential
// and integrity failures unwrap to it, so a caller that only cares about
// "user mistake vs. storage fault" can test a single sentinel.
var ErrValidation = errors.New("validation failed")

var (
	ErrReferential = &ruleError{msg: "referenced record does not exist", parent: ErrValidation}
	ErrIntegrity   = &ruleError{msg: "integrity constraint violated", parent: ErrValidation}
)

// Rule-level sentinels. Controllers wrap these with identifying context
// (ids, offending values) via fmt.Errorf and %w.
var (
	ErrEmptyUsername     = validation("username must not be empty")
	ErrInvalidEmail      = validation("invalid email address")
	ErrInvalidRole       = validation("role must be admin, manager or developer")
	ErrDuplicateUsername = validation("username already taken")
	ErrDuplicateEmail    = validation("email already taken")

	ErrEmptyProjectName     = validation("project name must not be empty")
	ErrDateOrder            = validation("start date must be before end date")
	ErrStartDateInPast      = validation("start date must not be in the past")
	ErrInvalidProjectStatus = validation("project status must be active, completed or on_hold")

	ErrEmptyTitle        = validation("task title must not be empty")
	ErrInvalidPriority   = validation("priority must be 1 (high), 2 (medium) or 3 (low)")
	ErrInvalidTaskStatus = validation("task status must be pending, in_progress or completed")
	ErrDueDateInPast     = validation("due date must not be in the past")

	ErrProjectNotFound = referential("project does not exist")
	ErrUserNotFound    = referential("user does not exist")
)

type ruleError struct {
	msg    string
	parent error
}

func (e *ruleError) Error() string { return e.msg }
func (e *ruleError) Unwrap() error { return e.parent }

func validation(msg string) error  { return &ruleError{msg: msg, parent: ErrValidation} }
func referential(msg string) error { return &ruleError{msg: msg, parent: ErrReferential} }
