package handler

import (
	"fmt"

	"relaybot/internal/domain"
	"relaybot/internal/service"
	"relaybot/internal/telegram"

	tele "gopkg.in/telebot.v3"
)

// handleMessage routes every non-command message. End-user messages
// are relayed to the operator; operator messages are broadcast content
// while broadcast mode is on, reply dispatches when they reply to a
// forwarded message, and a no-op otherwise.
func (h *Handler) handleMessage(c tele.Context) error {
	msg := c.Message()
	sender := c.Sender()
	content := telegram.ContentOf(msg)

	if h.isOwner(c) {
		if h.broadcast.Active(sender.ID) {
			return h.runBroadcast(c, content)
		}
		if msg.ReplyTo != nil {
			return c.Send(h.replies.Dispatch(msg.ReplyTo.ID, content))
		}
		return nil
	}

	ack := h.relay.Relay(service.InboundMessage{
		SenderID:       sender.ID,
		SenderName:     fullName(sender),
		SenderUsername: sender.Username,
		SentAt:         msg.Time(),
		Content:        content,
	})
	return c.Send(ack)
}

// runBroadcast shows a progress message, runs the pass, then edits the
// progress message into the final report
func (h *Handler) runBroadcast(c tele.Context, content domain.Content) error {
	status, err := h.bot.Send(c.Chat(), "📡 Broadcasting...")
	if err != nil {
		status = nil
	}

	report := h.broadcast.Run(content)
	text := fmt.Sprintf(
		"✅ Broadcast Done!\n\n✓ Sent: %d\n🚫 Blocked: %d\n✗ Failed: %d\n\nSend another or /cancel",
		report.Sent, report.Blocked, report.Failed,
	)

	if status != nil {
		_, err = h.bot.Edit(status, text)
		return err
	}
	return c.Send(text)
}
