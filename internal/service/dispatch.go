package service

import (
	"fmt"

	"relaybot/internal/domain"
	"relaybot/internal/metrics"

	"go.uber.org/zap"
)

// ReplyService routes the operator's replies back to the original
// sender of the forwarded message being replied to.
type ReplyService struct {
	routing *RoutingTable
	courier Courier
	logger  *zap.Logger
}

// NewReplyService creates a reply dispatcher
func NewReplyService(routing *RoutingTable, courier Courier, logger *zap.Logger) *ReplyService {
	return &ReplyService{
		routing: routing,
		courier: courier,
		logger:  logger,
	}
}

// Dispatch forwards the operator's reply content to the user the
// replied-to message originated from. The returned text is the
// acknowledgment shown to the operator. Nothing is sent when the
// replied-to id is unknown or the content kind is not deliverable
// as a direct reply.
func (s *ReplyService) Dispatch(replyToID int, content domain.Content) string {
	target, ok := s.routing.Resolve(replyToID)
	if !ok {
		return "⚠️ Reply to a forwarded message."
	}

	if !replyable(content.Kind) {
		return fmt.Sprintf("⚠️ Can't send %s messages as a reply.", content.Kind)
	}

	var err error
	if content.Kind == domain.KindText {
		_, err = s.courier.SendText(target, content.Text)
	} else {
		_, err = s.courier.SendContent(target, content)
	}
	if err != nil {
		s.logger.Warn("Failed to deliver operator reply",
			zap.Int64("user_id", target),
			zap.Error(err),
		)
		metrics.OperatorReplies.WithLabelValues("failed").Inc()
		return fmt.Sprintf("❌ Failed: %v", err)
	}

	metrics.OperatorReplies.WithLabelValues("ok").Inc()
	return "✅ Sent!"
}

// replyable limits operator replies to the kinds a direct message
// exchange supports
func replyable(k domain.Kind) bool {
	switch k {
	case domain.KindText, domain.KindPhoto, domain.KindVideo,
		domain.KindDocument, domain.KindVoice, domain.KindAudio:
		return true
	}
	return false
}
