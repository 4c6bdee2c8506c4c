package service

import (
	"fmt"
	"html"
	"math/rand"
	"strings"
	"time"

	"relaybot/internal/domain"
	"relaybot/internal/metrics"

	"go.uber.org/zap"
)

// InboundMessage is an end-user message handed to the relay
type InboundMessage struct {
	SenderID       int64
	SenderName     string
	SenderUsername string
	SentAt         time.Time
	Content        domain.Content
}

// RelayService forwards end-user messages to the operator and records
// where replies should go.
type RelayService struct {
	registry  *RegistryService
	routing   *RoutingTable
	courier   Courier
	ownerID   int64
	logger    *zap.Logger
	greetings []string
}

// NewRelayService creates a relay targeting the given operator id
func NewRelayService(
	registry *RegistryService,
	routing *RoutingTable,
	courier Courier,
	ownerID int64,
	operatorName string,
	logger *zap.Logger,
) *RelayService {
	return &RelayService{
		registry:  registry,
		routing:   routing,
		courier:   courier,
		ownerID:   ownerID,
		logger:    logger,
		greetings: buildGreetings(operatorName),
	}
}

// Relay forwards one inbound message to the operator. It returns the
// acknowledgment text for the sender: a random greeting on success, a
// generic failure notice if any forwarding step failed.
func (s *RelayService) Relay(msg InboundMessage) string {
	user := s.registry.Upsert(msg.SenderID, msg.SenderName, msg.SenderUsername, msg.SentAt)
	header := s.composeHeader(user)

	relayID, err := s.forward(header, msg.Content)
	if err != nil {
		s.logger.Error("Failed to forward message to operator",
			zap.Int64("user_id", msg.SenderID),
			zap.String("kind", string(msg.Content.Kind)),
			zap.Error(err),
		)
		return "❌ Error sending message. Try again."
	}

	s.routing.Record(relayID, msg.SenderID)
	metrics.RelayedMessages.Inc()
	return s.greetings[rand.Intn(len(s.greetings))]
}

// forward delivers the content to the operator and returns the id of
// the message the operator can reply to. Text carries the header
// inline; media gets the header as a separate preceding message.
func (s *RelayService) forward(header string, content domain.Content) (int, error) {
	switch content.Kind {
	case domain.KindText:
		return s.courier.SendHTML(s.ownerID, header+html.EscapeString(content.Text))
	case domain.KindUnknown, domain.KindVideoNote:
		return s.courier.SendHTML(s.ownerID, header+"[Unsupported type]")
	case domain.KindSticker:
		if _, err := s.courier.SendHTML(s.ownerID, header+"[Sticker]"); err != nil {
			return 0, err
		}
		return s.courier.SendContent(s.ownerID, content)
	default:
		if _, err := s.courier.SendHTML(s.ownerID, header); err != nil {
			return 0, err
		}
		return s.courier.SendContent(s.ownerID, content)
	}
}

func (s *RelayService) composeHeader(u domain.User) string {
	username := "No username"
	if u.Username != "" {
		username = "@" + u.Username
	}
	link := fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, u.ID, html.EscapeString(u.Name))
	return fmt.Sprintf("📨 New message:\n👤 %s\n🆔 %d\n📱 %s\n%s\n",
		link, u.ID, username, strings.Repeat("─", 30))
}

// buildGreetings fills the acknowledgment pool with the operator's name
func buildGreetings(name string) []string {
	templates := []string{
		"✨ Got it! %s will reply soon!",
		"📬 Message delivered! Hang tight!",
		"🎯 Your message is on its way to %s!",
		"⚡ Sent! %s will get back to you shortly!",
		"🌟 Message received! %s will respond soon!",
		"💫 Delivered successfully! Stay tuned!",
		"🚀 Your message just landed! %s will reply!",
		"🎨 Message sent! %s's on it!",
		"🔔 Ding! %s will see this soon!",
		"💌 Got your message! %s will reply ASAP!",
		"🎉 Perfect! Your message reached %s!",
		"✅ All set! %s will be in touch!",
		"📨 Message received loud and clear!",
		"👍 Done! %s will respond shortly!",
		"🌈 Great! Your message is with %s now!",
		"💬 Awesome! %s will check this soon!",
		"🎵 Nice! %s will get back to you!",
		"⭐ Sweet! Your message is delivered!",
		"🔥 Cool! %s will reply soon!",
		"💙 Thanks! %s will respond ASAP!",
	}

	greetings := make([]string, len(templates))
	for i, t := range templates {
		if strings.Contains(t, "%s") {
			greetings[i] = fmt.Sprintf(t, name)
		} else {
			greetings[i] = t
		}
	}
	return greetings
}
