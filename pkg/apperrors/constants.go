package apperrors

const (
	MsgInvalidInput         = "invalidInput"
	MsgEmptyUsername        = "emptyUsername"
	MsgInvalidEmail         = "invalidEmail"
	MsgInvalidRole          = "invalidRole"
	MsgDuplicateUsername    = "duplicateUsername"
	MsgDuplicateEmail       = "duplicateEmail"
	MsgEmptyProjectName     = "emptyProjectName"
	MsgDateOrder            = "startAfterEnd"
	MsgStartDateInPast      = "startDateInPast"
	MsgInvalidProjectStatus = "invalidProjectStatus"
	MsgEmptyTitle           = "emptyTitle"
	MsgInvalidPriority      = "invalidPriority"
	MsgInvalidTaskStatus    = "invalidTaskStatus"
	MsgDueDateInPast        = "dueDateInPast"
	MsgProjectNotFound      = "projectNotFound"
	MsgUserNotFound         = "userNotFound"
	MsgDuplicateRecord      = "duplicateRecord"
)
