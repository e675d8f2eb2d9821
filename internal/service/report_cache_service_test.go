package service

import (
	"context"
	"testing"
	"time"

	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Without a Redis client the cache must degrade to a silent no-op so the
// dashboard always falls through to the database.
func TestReportCacheServiceWithoutRedis(t *testing.T) {
	svc := NewReportCacheService(nil, logrus.New(), 30*time.Second)
	ctx := context.Background()

	report, ok := svc.Get(ctx, entity.PeriodoHoje)
	assert.Nil(t, report)
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		svc.Set(ctx, entity.PeriodoHoje, &dto.DashboardResponse{Periodo: "hoje"})
		svc.Invalidate(ctx)
	})
}

func TestReportCacheServiceNilReceiver(t *testing.T) {
	var svc *ReportCacheService
	ctx := context.Background()

	report, ok := svc.Get(ctx, entity.PeriodoMes)
	assert.Nil(t, report)
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		svc.Set(ctx, entity.PeriodoMes, nil)
		svc.Invalidate(ctx)
	})
}

func TestReportCacheKeys(t *testing.T) {
	svc := NewReportCacheService(nil, logrus.New(), 0)

	assert.Equal(t, "dashboard:relatorio:hoje", svc.key(entity.PeriodoHoje))
	assert.Equal(t, "dashboard:relatorio:semana", svc.key(entity.PeriodoSemana))
	assert.Equal(t, "dashboard:relatorio:mes", svc.key(entity.PeriodoMes))
}
