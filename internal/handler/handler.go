package handler

import (
	"relaybot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler wires bot updates to the relay services
type Handler struct {
	bot          *tele.Bot
	registry     *service.RegistryService
	routing      *service.RoutingTable
	relay        *service.RelayService
	replies      *service.ReplyService
	broadcast    *service.BroadcastService
	ownerID      int64
	operatorName string
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	registry *service.RegistryService,
	routing *service.RoutingTable,
	relay *service.RelayService,
	replies *service.ReplyService,
	broadcast *service.BroadcastService,
	ownerID int64,
	operatorName string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		registry:     registry,
		routing:      routing,
		relay:        relay,
		replies:      replies,
		broadcast:    broadcast,
		ownerID:      ownerID,
		operatorName: operatorName,
		logger:       logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/broadcast", h.handleBroadcast)
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle("/users", h.handleUsers)
	h.bot.Handle("/active", h.handleActive)
	h.bot.Handle("/blocked", h.handleBlocked)
	h.bot.Handle("/stats", h.handleStats)

	// Every content kind the relay forwards, plus a few it marks
	// as unsupported
	for _, event := range []string{
		tele.OnText,
		tele.OnPhoto,
		tele.OnVideo,
		tele.OnDocument,
		tele.OnVoice,
		tele.OnAudio,
		tele.OnVideoNote,
		tele.OnSticker,
		tele.OnAnimation,
		tele.OnContact,
		tele.OnLocation,
		tele.OnVenue,
		tele.OnDice,
	} {
		h.bot.Handle(event, h.handleMessage)
	}
}

// isOwner reports whether the sender is the configured operator
func (h *Handler) isOwner(c tele.Context) bool {
	return c.Sender() != nil && c.Sender().ID == h.ownerID
}

// fullName renders a Telegram user's display name
func fullName(u *tele.User) string {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	if name == "" {
		return "Unknown"
	}
	return name
}
