package service

import (
	"errors"
	"strings"

	"relaybot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Courier delivers messages to a chat and reports the platform id of
// the sent copy.
type Courier interface {
	SendText(chatID int64, text string) (int, error)
	SendHTML(chatID int64, text string) (int, error)
	SendContent(chatID int64, content domain.Content) (int, error)
}

// IsPermanentDeliveryFailure reports whether a send error means the
// target can never be reached again: the user blocked the bot, the
// account is deactivated, or the chat does not exist. Checks the
// client's typed API errors first; the substring match is a shim for
// errors the client does not map.
func IsPermanentDeliveryFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, tele.ErrBlockedByUser) ||
		errors.Is(err, tele.ErrUserIsDeactivated) ||
		errors.Is(err, tele.ErrChatNotFound) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "blocked") ||
		strings.Contains(msg, "deactivated") ||
		strings.Contains(msg, "not found")
}
