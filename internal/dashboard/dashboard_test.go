package dashboard

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeStore struct {
	admins, employees int64
	salary            float64
	err               error
	calls             int
}

func (f *fakeStore) CountAdmins(context.Context) (int64, error) {
	f.calls++
	return f.admins, f.err
}

func (f *fakeStore) CountEmployees(context.Context) (int64, error) { return f.employees, f.err }
func (f *fakeStore) SumSalaries(context.Context) (float64, error)  { return f.salary, f.err }

func TestCountsWithoutCache(t *testing.T) {
	store := &fakeStore{admins: 2, employees: 40, salary: 1250000.5}
	svc := NewService(store, nil, time.Minute)

	counts, err := svc.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts error: %v", err)
	}
	if counts.Admins != 2 || counts.Employees != 40 || counts.SalaryTotal != 1250000.5 {
		t.Fatalf("unexpected counts %+v", counts)
	}
	svc.Invalidate(context.Background())
}

func TestCountsStoreError(t *testing.T) {
	svc := NewService(&fakeStore{err: errors.New("down")}, nil, time.Minute)
	if _, err := svc.Counts(context.Background()); err == nil {
		t.Fatalf("expected store error")
	}
}

func TestCountsCachedInRedis(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}

	store := &fakeStore{admins: 1, employees: 3, salary: 10}
	svc := NewService(store, client, time.Minute)
	svc.Invalidate(context.Background())

	if _, err := svc.Counts(context.Background()); err != nil {
		t.Fatalf("counts error: %v", err)
	}
	if _, err := svc.Counts(context.Background()); err != nil {
		t.Fatalf("counts error: %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("expected second read from cache, store called %d times", store.calls)
	}

	svc.Invalidate(context.Background())
	if _, err := svc.Counts(context.Background()); err != nil {
		t.Fatalf("counts error: %v", err)
	}
	if store.calls != 2 {
		t.Fatalf("expected store read after invalidate, got %d", store.calls)
	}
}
