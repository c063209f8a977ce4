package grpc

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the health-checked service name published next to the
// overall ("") status.
const ServiceName = "hrdesk.api"

// NewServer returns a gRPC server exposing the standard health service.
// Statuses start as NOT_SERVING until the first store probe succeeds.
func NewServer() (*grpc.Server, *health.Server) {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	server := grpc.NewServer(grpc.UnaryInterceptor(LoggingUnaryInterceptor))
	healthpb.RegisterHealthServer(server, healthServer)
	return server, healthServer
}

// StatusSetter fans a status out to the overall and named service entries.
type StatusSetter struct {
	Health *health.Server
}

func (s StatusSetter) SetServingStatus(_ string, st healthpb.HealthCheckResponse_ServingStatus) {
	s.Health.SetServingStatus("", st)
	s.Health.SetServingStatus(ServiceName, st)
}

func LoggingUnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)
	if code != codes.OK {
		log.Printf("grpc method=%s code=%s duration_ms=%d", info.FullMethod, code, time.Since(start).Milliseconds())
	}
	return resp, err
}
