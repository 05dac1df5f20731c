// Package transport exposes a node to operators: a gRPC server carrying the
// standard health service and a REST API served through the grpc-gateway mux.
package transport

import (
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/minicoin/internal/node"
)

// ServiceName is the health service name that tracks the node lifecycle.
const ServiceName = "minicoin.Node"

// HealthReporter mirrors node state changes into a gRPC health server. The
// node reports SERVING only while it is synced with the network.
type HealthReporter struct {
	logger *zap.Logger
	server *health.Server
}

// NewHealthReporter marks ServiceName NOT_SERVING until the first state
// change arrives.
func NewHealthReporter(logger *zap.Logger, server *health.Server) *HealthReporter {
	server.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthReporter{logger: logger.Named("health"), server: server}
}

// OnStateChange implements node.StateObserver.
func (h *HealthReporter) OnStateChange(state node.State) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if state == node.StateSynced {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.server.SetServingStatus(ServiceName, status)
	h.logger.Debug("health updated", zap.Stringer("state", state), zap.Stringer("status", status))
}

// Shutdown flips every service to NOT_SERVING ahead of a graceful stop.
func (h *HealthReporter) Shutdown() {
	h.server.Shutdown()
}
