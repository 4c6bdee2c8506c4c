package service

import (
	"sync"

	"relaybot/internal/domain"
	"relaybot/internal/metrics"

	"go.uber.org/zap"
)

// BroadcastService fans one message out to every active user. A
// session flag per operator keeps broadcast mode sticky until
// cancelled; only one pass runs at a time.
type BroadcastService struct {
	registry     *RegistryService
	courier      Courier
	operatorName string
	logger       *zap.Logger

	mu       sync.Mutex
	sessions map[int64]bool
	running  sync.Mutex
}

// NewBroadcastService creates a broadcast engine
func NewBroadcastService(
	registry *RegistryService,
	courier Courier,
	operatorName string,
	logger *zap.Logger,
) *BroadcastService {
	return &BroadcastService{
		registry:     registry,
		courier:      courier,
		operatorName: operatorName,
		logger:       logger,
		sessions:     make(map[int64]bool),
	}
}

// Enable turns broadcast mode on for the given operator
func (s *BroadcastService) Enable(operatorID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[operatorID] = true
}

// Cancel turns broadcast mode off; returns whether it was on
func (s *BroadcastService) Cancel(operatorID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasOn := s.sessions[operatorID]
	delete(s.sessions, operatorID)
	return wasOn
}

// Active reports whether broadcast mode is on for the operator
func (s *BroadcastService) Active(operatorID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[operatorID]
}

// Run sends the content to every active user, one at a time, in
// registration order. Users whose delivery fails permanently are
// flipped to blocked; other failures change nothing. The registry is
// persisted again after the full pass.
func (s *BroadcastService) Run(content domain.Content) domain.BroadcastReport {
	s.running.Lock()
	defer s.running.Unlock()

	var report domain.BroadcastReport
	for _, user := range s.registry.ByStatus(domain.StatusActive) {
		if err := s.deliver(user.ID, content); err != nil {
			if IsPermanentDeliveryFailure(err) {
				s.registry.MarkBlocked(user.ID)
				report.Blocked++
				metrics.BroadcastSends.WithLabelValues("blocked").Inc()
			} else {
				report.Failed++
				metrics.BroadcastSends.WithLabelValues("failed").Inc()
				s.logger.Warn("Broadcast delivery failed",
					zap.Int64("user_id", user.ID),
					zap.Error(err),
				)
			}
			continue
		}
		report.Sent++
		metrics.BroadcastSends.WithLabelValues("sent").Inc()
	}

	s.registry.Persist()
	s.logger.Info("Broadcast finished",
		zap.Int("sent", report.Sent),
		zap.Int("blocked", report.Blocked),
		zap.Int("failed", report.Failed),
	)
	return report
}

// deliver sends one broadcast copy, prefixing the attribution header
// onto text and captions where the kind carries one
func (s *BroadcastService) deliver(userID int64, content domain.Content) error {
	header := "📢 Message from " + s.operatorName + ":\n\n"

	if content.Kind == domain.KindText {
		_, err := s.courier.SendText(userID, header+content.Text)
		return err
	}

	out := content
	if content.Kind.Captionable() {
		out.Caption = header + content.Caption
	}
	_, err := s.courier.SendContent(userID, out)
	return err
}
