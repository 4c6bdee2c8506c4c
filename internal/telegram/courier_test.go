package telegram

import (
	"testing"

	"relaybot/internal/domain"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestContentOf(t *testing.T) {
	tests := []struct {
		name     string
		message  *tele.Message
		expected domain.Content
	}{
		{
			name:     "text",
			message:  &tele.Message{Text: "hello"},
			expected: domain.Content{Kind: domain.KindText, Text: "hello"},
		},
		{
			name: "photo with caption",
			message: &tele.Message{
				Photo:   &tele.Photo{File: tele.File{FileID: "ph1"}},
				Caption: "look",
			},
			expected: domain.Content{Kind: domain.KindPhoto, FileID: "ph1", Caption: "look"},
		},
		{
			name: "video",
			message: &tele.Message{
				Video: &tele.Video{File: tele.File{FileID: "vd1"}},
			},
			expected: domain.Content{Kind: domain.KindVideo, FileID: "vd1"},
		},
		{
			name: "document",
			message: &tele.Message{
				Document: &tele.Document{File: tele.File{FileID: "doc1"}},
				Caption:  "report",
			},
			expected: domain.Content{Kind: domain.KindDocument, FileID: "doc1", Caption: "report"},
		},
		{
			name: "voice ignores caption",
			message: &tele.Message{
				Voice:   &tele.Voice{File: tele.File{FileID: "vo1"}},
				Caption: "dropped",
			},
			expected: domain.Content{Kind: domain.KindVoice, FileID: "vo1"},
		},
		{
			name: "audio",
			message: &tele.Message{
				Audio: &tele.Audio{File: tele.File{FileID: "au1"}},
			},
			expected: domain.Content{Kind: domain.KindAudio, FileID: "au1"},
		},
		{
			name: "video note",
			message: &tele.Message{
				VideoNote: &tele.VideoNote{File: tele.File{FileID: "vn1"}},
			},
			expected: domain.Content{Kind: domain.KindVideoNote, FileID: "vn1"},
		},
		{
			name: "sticker",
			message: &tele.Message{
				Sticker: &tele.Sticker{File: tele.File{FileID: "st1"}},
			},
			expected: domain.Content{Kind: domain.KindSticker, FileID: "st1"},
		},
		{
			name: "animation",
			message: &tele.Message{
				Animation: &tele.Animation{File: tele.File{FileID: "an1"}},
			},
			expected: domain.Content{Kind: domain.KindAnimation, FileID: "an1"},
		},
		{
			name:     "contact maps to unknown",
			message:  &tele.Message{Contact: &tele.Contact{PhoneNumber: "+123"}},
			expected: domain.Content{Kind: domain.KindUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContentOf(tt.message))
		})
	}
}

func TestCourier_SendContentRejectsUnknownKind(t *testing.T) {
	courier := NewCourier(nil)

	_, err := courier.SendContent(1001, domain.Content{Kind: domain.KindUnknown})
	assert.Error(t, err)
}
