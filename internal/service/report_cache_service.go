package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const reportCacheKeyPrefix = "dashboard:relatorio:"

// ReportCacheService caches assembled dashboard reports in Redis for a short
// TTL and invalidates them whenever a sale lands. The cache is best-effort:
// every Redis failure degrades to a direct database read, never to an error.
type ReportCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewReportCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *ReportCacheService {
	return &ReportCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// Get returns the cached report for the period, or (nil, false) on miss.
func (s *ReportCacheService) Get(ctx context.Context, periodo entity.Periodo) (*dto.DashboardResponse, bool) {
	if s == nil || s.redisClient == nil {
		return nil, false
	}

	payload, err := s.redisClient.Get(ctx, s.key(periodo)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read dashboard cache for periodo=%s: %+v", periodo, err)
		}
		return nil, false
	}

	var report dto.DashboardResponse
	if err := json.Unmarshal(payload, &report); err != nil {
		s.log.Warnf("Corrupt dashboard cache entry for periodo=%s, discarding: %+v", periodo, err)
		return nil, false
	}

	return &report, true
}

// Set stores the report under the period key with the configured TTL.
func (s *ReportCacheService) Set(ctx context.Context, periodo entity.Periodo, report *dto.DashboardResponse) {
	if s == nil || s.redisClient == nil {
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		s.log.Warnf("Failed to marshal dashboard report for periodo=%s: %+v", periodo, err)
		return
	}

	if err := s.redisClient.Set(ctx, s.key(periodo), payload, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write dashboard cache for periodo=%s: %+v", periodo, err)
	}
}

// Invalidate drops the cached report for every period. Called after a sale
// commits so the dashboard never serves stale stock or revenue for longer
// than one request.
func (s *ReportCacheService) Invalidate(ctx context.Context) {
	if s == nil || s.redisClient == nil {
		return
	}

	keys := []string{
		s.key(entity.PeriodoHoje),
		s.key(entity.PeriodoSemana),
		s.key(entity.PeriodoMes),
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to invalidate dashboard cache: %+v", err)
	}
}

func (s *ReportCacheService) key(periodo entity.Periodo) string {
	return fmt.Sprintf("%s%s", reportCacheKeyPrefix, periodo)
}
