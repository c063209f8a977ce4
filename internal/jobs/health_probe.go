package jobs

import (
	"context"
	"log"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthSetter interface {
	SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
}

// StartHealthProbe pings the store every interval and publishes the result
// as the serving status of service.
func StartHealthProbe(ctx context.Context, interval time.Duration, pinger Pinger, health HealthSetter, service string) {
	if pinger == nil || health == nil {
		return
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}

	probeOnce(ctx, timeout, pinger, health, service)

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probeOnce(ctx, timeout, pinger, health, service)
			}
		}
	}()
}

func probeOnce(ctx context.Context, timeout time.Duration, pinger Pinger, health HealthSetter, service string) {
	tickCtx, cancel := context.WithTimeout(ctx, timeout)
	err := pinger.Ping(tickCtx)
	cancel()
	if err != nil {
		log.Printf("health probe error: %v", err)
		health.SetServingStatus(service, healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	health.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)
}
