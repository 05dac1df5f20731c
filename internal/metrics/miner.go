package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	minerJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minicoin",
		Subsystem: "miner",
		Name:      "jobs_total",
		Help:      "Count of mining jobs by outcome.",
	}, []string{"outcome"})

	minerHashesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minicoin",
		Subsystem: "miner",
		Name:      "hashes_total",
		Help:      "Count of nonces tried.",
	})

	minerJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minicoin",
		Subsystem: "miner",
		Name:      "job_duration_seconds",
		Help:      "Duration of mining jobs by outcome.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14), // 10ms..~80s
	}, []string{"outcome"})
)

// Miner tracks proof-of-work activity.
type Miner struct{}

// NewMiner creates a Miner metrics collector.
func NewMiner() *Miner {
	return &Miner{}
}

// ObserveJob records a finished or abandoned mining job.
func (m Miner) ObserveJob(outcome string, attempts uint64, started time.Time) {
	minerJobsTotal.WithLabelValues(outcome).Inc()
	minerHashesTotal.Add(float64(attempts))
	minerJobDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
