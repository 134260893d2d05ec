// Package health reports process liveness over HTTP and store reachability
// over the gRPC health protocol.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"vidtube/internal/common"
)

// ServiceName is the gRPC health service name the store status is published
// under, next to the overall "" status.
const ServiceName = "vidtube"

type Status struct {
	Status    string    `json:"status"`
	Uptime    float64   `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}

type Handler struct {
	started time.Time
	now     func() time.Time
}

func NewHandler() *Handler {
	return &Handler{started: time.Now(), now: time.Now}
}

// Healthcheck reports uptime in seconds.
func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	common.WriteJSON(w, http.StatusOK, Status{
		Status:    "OK",
		Uptime:    now.Sub(h.started).Seconds(),
		Timestamp: now.UTC(),
	}, "Server is healthy")
}

// Pinger checks that a backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor keeps a gRPC health server in step with the store.
type Monitor struct {
	server   *grpchealth.Server
	pinger   Pinger
	interval time.Duration
	log      *logrus.Logger
}

func NewMonitor(pinger Pinger, interval time.Duration, log *logrus.Logger) *Monitor {
	return &Monitor{
		server:   grpchealth.NewServer(),
		pinger:   pinger,
		interval: interval,
		log:      log,
	}
}

// Register exposes the health service and reflection on srv.
func (m *Monitor) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, m.server)
	reflection.Register(srv)
}

// Check pings the store once and publishes the result.
func (m *Monitor) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := m.pinger.Ping(ctx); err != nil {
		m.log.WithError(err).Warn("store ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	m.server.SetServingStatus("", status)
	m.server.SetServingStatus(ServiceName, status)
	return status
}

// Run checks every interval until ctx is done, then marks everything as
// not serving.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			m.server.Shutdown()
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}
