package handler

import (
	"fmt"
	"html"
	"strings"

	"relaybot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: a dashboard for the operator, a greeting
// for everyone else. Contact from a known user re-activates them.
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	if h.isOwner(c) {
		total, active, blocked := h.registry.Stats()
		return c.Send(fmt.Sprintf(
			"👋 Welcome %s!\n\n👥 Users: %d | ✅ Active: %d | 🚫 Blocked: %d\n\n"+
				"📝 Commands:\n/broadcast - Start broadcast\n/users - All users\n"+
				"/active - Active users\n/blocked - Blocked users\n/stats - Statistics\n\n"+
				"Reply to messages to respond.",
			h.operatorName, total, active, blocked,
		))
	}

	h.registry.Upsert(sender.ID, fullName(sender), sender.Username, c.Message().Time())
	return c.Send(fmt.Sprintf("👋 Hi! Please send a message to %s, they'll reply soon.", h.operatorName))
}

// handleBroadcast turns broadcast mode on
func (h *Handler) handleBroadcast(c tele.Context) error {
	if !h.isOwner(c) {
		return c.Send("⛔ Owner only.")
	}
	h.broadcast.Enable(c.Sender().ID)
	return c.Send("📢 Broadcast Mode ON! Send any message. /cancel to exit.")
}

// handleCancel turns broadcast mode off
func (h *Handler) handleCancel(c tele.Context) error {
	if !h.isOwner(c) {
		return c.Send("⛔ Owner only.")
	}
	if h.broadcast.Cancel(c.Sender().ID) {
		return c.Send("❌ Broadcast cancelled.")
	}
	return nil
}

func (h *Handler) handleUsers(c tele.Context) error {
	if !h.isOwner(c) {
		return c.Send("⛔ Owner only.")
	}

	users := h.registry.All()
	if len(users) == 0 {
		return c.Send("📭 No users!")
	}

	var b strings.Builder
	b.WriteString("👥 All Users:\n\n")
	for _, u := range users {
		marker := "✅"
		if u.Status == domain.StatusBlocked {
			marker = "🚫"
		}
		fmt.Fprintf(&b, "%s %s (ID: %d)\n", marker, profileLink(u), u.ID)
	}
	return c.Send(b.String(), &tele.SendOptions{ParseMode: tele.ModeHTML})
}

func (h *Handler) handleActive(c tele.Context) error {
	if !h.isOwner(c) {
		return c.Send("⛔ Owner only.")
	}

	users := h.registry.ByStatus(domain.StatusActive)
	if len(users) == 0 {
		return c.Send("📭 No active users!")
	}

	var b strings.Builder
	b.WriteString("✅ Active Users:\n\n")
	for _, u := range users {
		fmt.Fprintf(&b, "• %s (ID: %d)\n", profileLink(u), u.ID)
	}
	fmt.Fprintf(&b, "\n📊 Total: %d", len(users))
	return c.Send(b.String(), &tele.SendOptions{ParseMode: tele.ModeHTML})
}

func (h *Handler) handleBlocked(c tele.Context) error {
	if !h.isOwner(c) {
		return c.Send("⛔ Owner only.")
	}

	users := h.registry.ByStatus(domain.StatusBlocked)
	if len(users) == 0 {
		return c.Send("✅ No blocked users!")
	}

	var b strings.Builder
	b.WriteString("🚫 Blocked Users:\n\n")
	for _, u := range users {
		fmt.Fprintf(&b, "• %s (ID: %d)\n", profileLink(u), u.ID)
	}
	fmt.Fprintf(&b, "\n📊 Total: %d", len(users))
	return c.Send(b.String(), &tele.SendOptions{ParseMode: tele.ModeHTML})
}

func (h *Handler) handleStats(c tele.Context) error {
	if !h.isOwner(c) {
		return c.Send("⛔ Owner only.")
	}

	total, active, blocked := h.registry.Stats()
	return c.Send(fmt.Sprintf(
		"📊 Statistics\n\n👥 Total: %d\n✅ Active: %d\n🚫 Blocked: %d\n💬 Conversations: %d",
		total, active, blocked, h.routing.Size(),
	))
}

func profileLink(u domain.User) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, u.ID, html.EscapeString(u.Name))
}
