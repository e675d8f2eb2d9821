package usecase

import (
	"context"

	"pdv-estoque-api/internal/converter"
	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/domain/entity"
	"pdv-estoque-api/internal/domain/repository"
	"pdv-estoque-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	ultimasVendasLimit  = 5
	maisVendidosLimit   = 5
	estoqueBaixoLimit   = 10
	vendasPorDiaDias    = 7
	melhorPeriodoPadrao = 12
)

// margemLucroEstimada is the fixed assumed margin applied to revenue. The
// estimate is intentionally not derived from acquisition cost.
var margemLucroEstimada = decimal.NewFromFloat(0.4)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, periodo entity.Periodo) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db                   *gorm.DB
	log                  *logrus.Logger
	produtoRepo          repository.ProdutoRepository
	vendaRepo            repository.VendaRepository
	reportCache          *service.ReportCacheService
	estoqueCriticoLimite int
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
	reportCache *service.ReportCacheService,
	estoqueCriticoLimite int,
) DashboardUsecase {
	return &dashboardUsecase{
		db:                   db,
		log:                  log,
		produtoRepo:          produtoRepo,
		vendaRepo:            vendaRepo,
		reportCache:          reportCache,
		estoqueCriticoLimite: estoqueCriticoLimite,
	}
}

// GetDashboard assembles the aggregate report for the period. The aggregates
// are independent reads, so they fan out concurrently; no cross-query
// snapshot is required. Results are cached per period for a short TTL and
// invalidated whenever a sale commits.
func (u *dashboardUsecase) GetDashboard(ctx context.Context, periodo entity.Periodo) (*dto.DashboardResponse, error) {
	if cached, ok := u.reportCache.Get(ctx, periodo); ok {
		return cached, nil
	}

	var (
		resumo       *entity.ResumoVendas
		estoque      *entity.ResumoEstoque
		baixoEstoque []entity.Produto
		ultimas      []entity.VendaDetalhada
		maisVendidos []entity.ProdutoMaisVendido
		pico         *entity.HorarioPico
		porDia       []entity.VendaDiaria
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resumo, err = u.vendaRepo.Resumo(u.db.WithContext(gctx), periodo)
		return err
	})
	g.Go(func() error {
		var err error
		estoque, err = u.produtoRepo.ResumoEstoque(u.db.WithContext(gctx), u.estoqueCriticoLimite)
		return err
	})
	g.Go(func() error {
		var err error
		baixoEstoque, err = u.produtoRepo.FindEstoqueBaixo(u.db.WithContext(gctx), u.estoqueCriticoLimite, estoqueBaixoLimit)
		return err
	})
	g.Go(func() error {
		var err error
		ultimas, err = u.vendaRepo.FindUltimas(u.db.WithContext(gctx), ultimasVendasLimit)
		return err
	})
	g.Go(func() error {
		var err error
		maisVendidos, err = u.vendaRepo.MaisVendidos(u.db.WithContext(gctx), periodo, maisVendidosLimit)
		return err
	})
	g.Go(func() error {
		var err error
		pico, err = u.vendaRepo.HorarioPico(u.db.WithContext(gctx), periodo)
		return err
	})
	g.Go(func() error {
		var err error
		porDia, err = u.vendaRepo.VendasPorDia(u.db.WithContext(gctx), vendasPorDiaDias)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to build dashboard for periodo=%s: %+v", periodo, err)
		return nil, err
	}

	report := &dto.DashboardResponse{
		Periodo:              string(periodo),
		VendasHoje:           resumo.TotalVendas,
		FaturamentoHoje:      resumo.Faturamento,
		TicketMedio:          resumo.TicketMedio,
		LucroHoje:            resumo.Faturamento.Mul(margemLucroEstimada),
		TotalEstoque:         estoque.TotalEstoque,
		TotalCadastrados:     estoque.TotalCadastrados,
		EstoqueCriticos:      estoque.Criticos,
		BaixoEstoque:         converter.ProdutosToResponses(baixoEstoque),
		UltimasVendas:        converter.VendasDetalhadasToResponses(ultimas),
		ProdutosMaisVendidos: maisVendidosToResponses(maisVendidos),
		ProdutoDoDia:         produtoDoDia(maisVendidos),
		MelhorPeriodo:        melhorPeriodo(pico),
		VendasPorDia:         vendasPorDiaToResponses(porDia),
	}

	u.reportCache.Set(ctx, periodo, report)
	return report, nil
}

func maisVendidosToResponses(ranking []entity.ProdutoMaisVendido) []dto.ProdutoMaisVendidoResponse {
	responses := make([]dto.ProdutoMaisVendidoResponse, 0, len(ranking))
	for _, item := range ranking {
		responses = append(responses, dto.ProdutoMaisVendidoResponse{
			Nome:             item.Nome,
			TotalVendido:     item.TotalVendido,
			FaturamentoTotal: item.FaturamentoTotal,
		})
	}
	return responses
}

// produtoDoDia is the top seller of the window, nil when nothing sold.
func produtoDoDia(ranking []entity.ProdutoMaisVendido) *dto.ProdutoDoDiaResponse {
	if len(ranking) == 0 {
		return nil
	}
	return &dto.ProdutoDoDiaResponse{
		Nome:        ranking[0].Nome,
		Vendas:      ranking[0].TotalVendido,
		Faturamento: ranking[0].FaturamentoTotal,
	}
}

func melhorPeriodo(pico *entity.HorarioPico) dto.MelhorPeriodoResponse {
	if pico == nil {
		return dto.MelhorPeriodoResponse{Hora: melhorPeriodoPadrao, TotalVendas: 0}
	}
	return dto.MelhorPeriodoResponse{Hora: pico.Hora, TotalVendas: pico.TotalVendas}
}

func vendasPorDiaToResponses(serie []entity.VendaDiaria) []dto.VendaDiariaResponse {
	responses := make([]dto.VendaDiariaResponse, 0, len(serie))
	for _, dia := range serie {
		responses = append(responses, dto.VendaDiariaResponse{
			Data:        dia.Data,
			Vendas:      dia.TotalVendas,
			Faturamento: dia.Faturamento,
		})
	}
	return responses
}
