package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/recipebox-server/internal/logger"
)

// Service is the name under which database readiness is reported, in
// addition to the server-wide empty name.
const Service = "recipebox"

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Reporter keeps a gRPC health server in line with database reachability.
type Reporter struct {
	server   *health.Server
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger

	last healthpb.HealthCheckResponse_ServingStatus
}

// NewReporter creates a Reporter that pings every interval.
func NewReporter(server *health.Server, pinger Pinger, interval time.Duration, logger *logger.Logger) *Reporter {
	return &Reporter{
		server:   server,
		pinger:   pinger,
		interval: interval,
		logger:   logger,
		last:     healthpb.HealthCheckResponse_UNKNOWN,
	}
}

// Run checks once immediately and then on every tick until ctx is done,
// at which point every service is reported NOT_SERVING.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			r.server.Shutdown()
			return
		case <-ticker.C:
			r.Check(ctx)
		}
	}
}

// Check pings once and publishes the result.
func (r *Reporter) Check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	next := healthpb.HealthCheckResponse_SERVING
	err := r.pinger.Ping(pingCtx)
	if err != nil {
		next = healthpb.HealthCheckResponse_NOT_SERVING
	}

	r.server.SetServingStatus("", next)
	r.server.SetServingStatus(Service, next)

	if next == r.last {
		return
	}
	r.last = next
	if err != nil {
		r.logger.Warn("Health reporter: database unreachable", "error", err.Error())
		return
	}
	r.logger.Info("Health reporter: database reachable")
}
