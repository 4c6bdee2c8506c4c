package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RelayedMessages counts end-user messages forwarded to the operator
	RelayedMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relaybot_messages_relayed_total",
		Help: "Number of end-user messages forwarded to the operator.",
	})

	// OperatorReplies counts reply deliveries by result (ok, failed)
	OperatorReplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relaybot_operator_replies_total",
		Help: "Number of operator replies dispatched, by result.",
	}, []string{"result"})

	// BroadcastSends counts broadcast deliveries by result (sent, blocked, failed)
	BroadcastSends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relaybot_broadcast_sends_total",
		Help: "Number of broadcast deliveries, by result.",
	}, []string{"result"})
)
