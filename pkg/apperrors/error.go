// Package apperrors turns domain errors into the localized, human-readable
// messages the GUI surfaces in dialogs.
package apperrors

import (
	"errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"taskdesk/internal/core/domain"
	"taskdesk/pkg/translator"
)

// catalogue pairs each rule sentinel with its message key, most specific
// first.
var catalogue = []struct {
	err error
	key string
}{
	{domain.ErrEmptyUsername, MsgEmptyUsername},
	{domain.ErrInvalidEmail, MsgInvalidEmail},
	{domain.ErrInvalidRole, MsgInvalidRole},
	{domain.ErrDuplicateUsername, MsgDuplicateUsername},
	{domain.ErrDuplicateEmail, MsgDuplicateEmail},
	{domain.ErrEmptyProjectName, MsgEmptyProjectName},
	{domain.ErrDateOrder, MsgDateOrder},
	{domain.ErrStartDateInPast, MsgStartDateInPast},
	{domain.ErrInvalidProjectStatus, MsgInvalidProjectStatus},
	{domain.ErrEmptyTitle, MsgEmptyTitle},
	{domain.ErrInvalidPriority, MsgInvalidPriority},
	{domain.ErrInvalidTaskStatus, MsgInvalidTaskStatus},
	{domain.ErrDueDateInPast, MsgDueDateInPast},
	{domain.ErrProjectNotFound, MsgProjectNotFound},
	{domain.ErrUserNotFound, MsgUserNotFound},
}

// Describe resolves the dialog text for a failed operation. Validation-class
// errors map to translated messages; storage faults are shown verbatim.
func Describe(err error, lang string) string {
	for _, entry := range catalogue {
		if errors.Is(err, entry.err) {
			return GetTransMsg(entry.key, lang)
		}
	}
	if errors.Is(err, domain.ErrIntegrity) {
		return GetTransMsg(MsgDuplicateRecord, lang)
	}
	if errors.Is(err, domain.ErrValidation) {
		return GetTransMsg(MsgInvalidInput, lang)
	}
	return err.Error()
}

// GetTransMsg retrieves the translated message for a key, falling back to
// the key itself.
func GetTransMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
