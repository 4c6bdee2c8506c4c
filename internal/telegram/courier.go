package telegram

import (
	"fmt"

	"relaybot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Courier implements service.Courier on top of a telebot client
type Courier struct {
	bot *tele.Bot
}

// NewCourier wraps the given bot
func NewCourier(bot *tele.Bot) *Courier {
	return &Courier{bot: bot}
}

// SendText sends a plain text message
func (c *Courier) SendText(chatID int64, text string) (int, error) {
	msg, err := c.bot.Send(tele.ChatID(chatID), text)
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// SendHTML sends a text message with HTML formatting
func (c *Courier) SendHTML(chatID int64, text string) (int, error) {
	msg, err := c.bot.Send(tele.ChatID(chatID), text, &tele.SendOptions{
		ParseMode: tele.ModeHTML,
	})
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// SendContent sends media by its platform file id, with the caption
// where the kind supports one
func (c *Courier) SendContent(chatID int64, content domain.Content) (int, error) {
	var what interface{}

	file := tele.File{FileID: content.FileID}
	switch content.Kind {
	case domain.KindText:
		what = content.Text
	case domain.KindPhoto:
		what = &tele.Photo{File: file, Caption: content.Caption}
	case domain.KindVideo:
		what = &tele.Video{File: file, Caption: content.Caption}
	case domain.KindDocument:
		what = &tele.Document{File: file, Caption: content.Caption}
	case domain.KindVoice:
		what = &tele.Voice{File: file}
	case domain.KindAudio:
		what = &tele.Audio{File: file, Caption: content.Caption}
	case domain.KindVideoNote:
		what = &tele.VideoNote{File: file}
	case domain.KindSticker:
		what = &tele.Sticker{File: file}
	case domain.KindAnimation:
		what = &tele.Animation{File: file, Caption: content.Caption}
	default:
		return 0, fmt.Errorf("unsendable content kind %q", content.Kind)
	}

	msg, err := c.bot.Send(tele.ChatID(chatID), what)
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// ContentOf extracts the transport-independent content of a message
func ContentOf(m *tele.Message) domain.Content {
	switch {
	case m.Text != "":
		return domain.Content{Kind: domain.KindText, Text: m.Text}
	case m.Photo != nil:
		return domain.Content{Kind: domain.KindPhoto, FileID: m.Photo.FileID, Caption: m.Caption}
	case m.Video != nil:
		return domain.Content{Kind: domain.KindVideo, FileID: m.Video.FileID, Caption: m.Caption}
	case m.Document != nil:
		return domain.Content{Kind: domain.KindDocument, FileID: m.Document.FileID, Caption: m.Caption}
	case m.Voice != nil:
		return domain.Content{Kind: domain.KindVoice, FileID: m.Voice.FileID}
	case m.Audio != nil:
		return domain.Content{Kind: domain.KindAudio, FileID: m.Audio.FileID, Caption: m.Caption}
	case m.VideoNote != nil:
		return domain.Content{Kind: domain.KindVideoNote, FileID: m.VideoNote.FileID}
	case m.Sticker != nil:
		return domain.Content{Kind: domain.KindSticker, FileID: m.Sticker.FileID}
	case m.Animation != nil:
		return domain.Content{Kind: domain.KindAnimation, FileID: m.Animation.FileID, Caption: m.Caption}
	default:
		return domain.Content{Kind: domain.KindUnknown}
	}
}
