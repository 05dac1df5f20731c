// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minicoin",
		Subsystem: "node",
		Name:      "blocks_total",
		Help:      "Count of blocks offered to the ledger by source and outcome.",
	}, []string{"role", "source", "status"})

	nodeChainReplacementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minicoin",
		Subsystem: "node",
		Name:      "chain_replacements_total",
		Help:      "Count of candidate chains received from peers by outcome.",
	}, []string{"role", "status"})

	nodeSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minicoin",
		Subsystem: "node",
		Name:      "sync_duration_seconds",
		Help:      "Duration of a sync round against known peers.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"role", "status"})

	nodeChainLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "minicoin",
		Subsystem: "node",
		Name:      "chain_length",
		Help:      "Number of blocks in the local chain, genesis included.",
	}, []string{"role"})

	nodePeers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "minicoin",
		Subsystem: "node",
		Name:      "peers",
		Help:      "Number of registered peers.",
	}, []string{"role"})

	nodeState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "minicoin",
		Subsystem: "node",
		Name:      "state",
		Help:      "Lifecycle state; the current state is 1, the others 0.",
	}, []string{"role", "state"})
)

var nodeStates = []string{"joining", "synced", "shutting_down"}

// Node tracks metrics for the node controller.
type Node struct {
	role string
}

// NewNode constructs a Node collector labelled with the node's role.
func NewNode(role string) *Node {
	if role == "" {
		role = "unknown"
	}
	return &Node{role: role}
}

// ObserveBlock records a block append attempt. source is "peer" or "local".
func (m Node) ObserveBlock(source string, err error) {
	nodeBlocksTotal.WithLabelValues(m.role, source, blockStatus(err)).Inc()
}

// ObserveChainReplace records the outcome of offering a peer chain.
func (m Node) ObserveChainReplace(replaced bool, err error) {
	status := "kept"
	switch {
	case err != nil:
		status = "invalid"
	case replaced:
		status = "replaced"
	}
	nodeChainReplacementsTotal.WithLabelValues(m.role, status).Inc()
}

// ObserveSync records one sync round.
func (m Node) ObserveSync(err error, started time.Time) {
	nodeSyncDuration.WithLabelValues(m.role, status(err)).Observe(time.Since(started).Seconds())
}

// SetChainLength publishes the local chain length.
func (m Node) SetChainLength(n int) {
	nodeChainLength.WithLabelValues(m.role).Set(float64(n))
}

// SetPeers publishes the registry size.
func (m Node) SetPeers(n int) {
	nodePeers.WithLabelValues(m.role).Set(float64(n))
}

// SetState marks state as the current lifecycle state.
func (m Node) SetState(state string) {
	for _, s := range nodeStates {
		v := 0.0
		if s == state {
			v = 1
		}
		nodeState.WithLabelValues(m.role, s).Set(v)
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func blockStatus(err error) string {
	if err != nil {
		return "rejected"
	}
	return "accepted"
}
