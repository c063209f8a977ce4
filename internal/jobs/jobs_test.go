package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type recordingRemover struct {
	mu      sync.Mutex
	removed []string
	failOn  string
}

func (r *recordingRemover) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removed = append(r.removed, name)
	if name == r.failOn {
		return errors.New("permission denied")
	}
	return nil
}

func TestImageCleanerKeepsRunningAfterFailure(t *testing.T) {
	remover := &recordingRemover{failOn: "image_1.png"}
	cleaner := NewImageCleaner(remover, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cleaner.Start(ctx)
	cleaner.Schedule("image_1.png")
	cleaner.Schedule("image_2.png")
	cancel()
	cleaner.Wait()

	remover.mu.Lock()
	defer remover.mu.Unlock()
	if len(remover.removed) != 2 || remover.removed[1] != "image_2.png" {
		t.Fatalf("expected both images processed, got %v", remover.removed)
	}
}

func TestImageCleanerScheduleDoesNotBlock(t *testing.T) {
	cleaner := NewImageCleaner(&recordingRemover{}, 1)
	done := make(chan struct{})
	go func() {
		cleaner.Schedule("a")
		cleaner.Schedule("b")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("schedule blocked on a full queue")
	}
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type recordingHealth struct {
	mu     sync.Mutex
	status healthpb.HealthCheckResponse_ServingStatus
}

func (h *recordingHealth) SetServingStatus(_ string, status healthpb.HealthCheckResponse_ServingStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = status
}

func TestHealthProbeReflectsPing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	health := &recordingHealth{}
	StartHealthProbe(ctx, time.Hour, fakePinger{}, health, "")
	if health.status != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("expected SERVING, got %v", health.status)
	}

	down := &recordingHealth{}
	StartHealthProbe(ctx, time.Hour, fakePinger{err: errors.New("down")}, down, "")
	if down.status != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("expected NOT_SERVING, got %v", down.status)
	}
}
