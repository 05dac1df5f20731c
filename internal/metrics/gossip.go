package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gossipClientExchangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minicoin",
		Subsystem: "gossip_client",
		Name:      "exchanges_total",
		Help:      "Count of outbound gossip exchanges.",
	}, []string{"kind", "status"})
	gossipClientExchangeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minicoin",
		Subsystem: "gossip_client",
		Name:      "exchange_duration_seconds",
		Help:      "Duration of outbound gossip exchanges.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	gossipServerMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minicoin",
		Subsystem: "gossip_server",
		Name:      "messages_total",
		Help:      "Count of inbound gossip messages.",
	}, []string{"kind", "status"})
	gossipServerMessageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minicoin",
		Subsystem: "gossip_server",
		Name:      "message_duration_seconds",
		Help:      "Duration of handling inbound gossip messages.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})
)

// GossipClient tracks outbound gossip traffic.
type GossipClient struct{}

// NewGossipClient creates a GossipClient metrics collector.
func NewGossipClient() *GossipClient {
	return &GossipClient{}
}

// ObserveExchange records one outbound exchange.
func (m GossipClient) ObserveExchange(kind string, err error, started time.Time) {
	s := status(err)
	gossipClientExchangesTotal.WithLabelValues(kind, s).Inc()
	gossipClientExchangeDuration.WithLabelValues(kind, s).Observe(time.Since(started).Seconds())
}

// GossipServer tracks inbound gossip traffic.
type GossipServer struct{}

// NewGossipServer creates a GossipServer metrics collector.
func NewGossipServer() *GossipServer {
	return &GossipServer{}
}

// ObserveMessage records one inbound message.
func (m GossipServer) ObserveMessage(kind string, err error, started time.Time) {
	s := status(err)
	gossipServerMessagesTotal.WithLabelValues(kind, s).Inc()
	gossipServerMessageDuration.WithLabelValues(kind, s).Observe(time.Since(started).Seconds())
}
