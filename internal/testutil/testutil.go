package testutil

import (
	"time"

	"relaybot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user record
func NewTestUser(id int64, name string, status domain.Status) domain.User {
	return domain.User{
		ID:        id,
		Name:      name,
		FirstSeen: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

// TextContent creates text content
func TextContent(text string) domain.Content {
	return domain.Content{Kind: domain.KindText, Text: text}
}

// PhotoContent creates photo content with a caption
func PhotoContent(fileID, caption string) domain.Content {
	return domain.Content{Kind: domain.KindPhoto, FileID: fileID, Caption: caption}
}
