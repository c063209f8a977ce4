package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "hrdesk:dashboard:counts"

type Counts struct {
	Admins      int64   `json:"admins"`
	Employees   int64   `json:"employees"`
	SalaryTotal float64 `json:"salary_total"`
}

type Store interface {
	CountAdmins(ctx context.Context) (int64, error)
	CountEmployees(ctx context.Context) (int64, error)
	SumSalaries(ctx context.Context) (float64, error)
}

// Service serves headcount and salary totals. With a redis client the
// snapshot is cached for ttl and dropped whenever employees change.
type Service struct {
	store Store
	redis *redis.Client
	ttl   time.Duration
}

func NewService(store Store, client *redis.Client, ttl time.Duration) *Service {
	return &Service{store: store, redis: client, ttl: ttl}
}

func (s *Service) Counts(ctx context.Context) (Counts, error) {
	if counts, ok := s.cached(ctx); ok {
		return counts, nil
	}

	var (
		counts Counts
		err    error
	)
	if counts.Admins, err = s.store.CountAdmins(ctx); err != nil {
		return Counts{}, err
	}
	if counts.Employees, err = s.store.CountEmployees(ctx); err != nil {
		return Counts{}, err
	}
	if counts.SalaryTotal, err = s.store.SumSalaries(ctx); err != nil {
		return Counts{}, err
	}
	s.remember(ctx, counts)
	return counts, nil
}

func (s *Service) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, cacheKey).Err(); err != nil {
		log.Printf("dashboard cache invalidate error: %v", err)
	}
}

func (s *Service) cached(ctx context.Context) (Counts, bool) {
	if s.redis == nil {
		return Counts{}, false
	}
	payload, err := s.redis.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("dashboard cache read error: %v", err)
		}
		return Counts{}, false
	}
	var counts Counts
	if err := json.Unmarshal(payload, &counts); err != nil {
		log.Printf("dashboard cache decode error: %v", err)
		return Counts{}, false
	}
	return counts, true
}

func (s *Service) remember(ctx context.Context, counts Counts) {
	if s.redis == nil || s.ttl <= 0 {
		return
	}
	payload, err := json.Marshal(counts)
	if err != nil {
		log.Printf("dashboard cache encode error: %v", err)
		return
	}
	if err := s.redis.Set(ctx, cacheKey, payload, s.ttl).Err(); err != nil {
		log.Printf("dashboard cache write error key=%s: %v", cacheKey, err)
	}
}
