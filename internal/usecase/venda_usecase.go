package usecase

import (
	"context"
	"errors"
	"fmt"

	"pdv-estoque-api/internal/converter"
	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/domain/entity"
	"pdv-estoque-api/internal/domain/repository"
	"pdv-estoque-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrValorUnitarioNegativo = errors.New("valor unitário não pode ser negativo")

// EstoqueInsuficienteError reports an oversell attempt together with the
// quantity still available, so the response can surface it to the caller.
type EstoqueInsuficienteError struct {
	Disponivel int
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente: %d unidades disponíveis", e.Disponivel)
}

type VendaUsecase interface {
	Create(ctx context.Context, req *dto.CreateVendaRequest) (*dto.VendaResponse, error)
	List(ctx context.Context, periodo entity.Periodo, page, limit int) (*dto.VendaListResponse, error)
}

type vendaUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	produtoRepo repository.ProdutoRepository
	vendaRepo   repository.VendaRepository
	reportCache *service.ReportCacheService
}

func NewVendaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
	reportCache *service.ReportCacheService,
) VendaUsecase {
	return &vendaUsecase{
		db:          db,
		log:         log,
		produtoRepo: produtoRepo,
		vendaRepo:   vendaRepo,
		reportCache: reportCache,
	}
}

// Create records a sale atomically with the stock decrement.
//
// Flow, inside a single transaction:
// 1. Lock the product row (FOR UPDATE); serializes sales of the same
//    product without blocking other products.
// 2. Missing product -> ErrProdutoNotFound.
// 3. Insufficient stock -> EstoqueInsuficienteError with the available count.
// 4. Decrement stock.
// 5. Insert the sale with valor_total computed server-side.
// Any failure rolls the whole transaction back: no partial decrement, no
// orphan sale row.
func (u *vendaUsecase) Create(ctx context.Context, req *dto.CreateVendaRequest) (*dto.VendaResponse, error) {
	if req.ValorUnitario.IsNegative() {
		return nil, ErrValorUnitarioNegativo
	}

	var venda *entity.Venda
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		produto, err := u.produtoRepo.FindByIDForUpdate(tx, req.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return ErrProdutoNotFound
		}

		if !produto.TemEstoque(req.Quantidade) {
			return &EstoqueInsuficienteError{Disponivel: produto.Quantidade}
		}

		produto.Quantidade -= req.Quantidade
		if err := u.produtoRepo.Update(tx, produto); err != nil {
			return err
		}

		formaPagamento := req.FormaPagamento
		if formaPagamento == "" {
			formaPagamento = entity.FormaPagamentoDinheiro
		}

		produtoID := produto.ID
		venda = &entity.Venda{
			ProdutoID:      &produtoID,
			ProdutoNome:    req.ProdutoNome,
			Quantidade:     req.Quantidade,
			ValorUnitario:  req.ValorUnitario,
			ValorTotal:     req.ValorUnitario.Mul(decimal.NewFromInt(int64(req.Quantidade))),
			FormaPagamento: formaPagamento,
		}
		return u.vendaRepo.Create(tx, venda)
	})
	if err != nil {
		var estoqueErr *EstoqueInsuficienteError
		if errors.Is(err, ErrProdutoNotFound) || errors.As(err, &estoqueErr) {
			return nil, err
		}
		u.log.Errorf("Venda transaction failed for produto %s: %+v", req.ProdutoID, err)
		return nil, err
	}

	u.reportCache.Invalidate(ctx)

	u.log.Infof("Venda registered: id=%s, produto=%s, quantidade=%d, total=%s",
		venda.ID, venda.ProdutoNome, venda.Quantidade, venda.ValorTotal)
	return converter.VendaToResponse(venda), nil
}

func (u *vendaUsecase) List(ctx context.Context, periodo entity.Periodo, page, limit int) (*dto.VendaListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit

	vendas, total, err := u.vendaRepo.FindAll(u.db.WithContext(ctx), periodo, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list vendas: %+v", err)
		return nil, err
	}

	resumo, err := u.vendaRepo.Resumo(u.db.WithContext(ctx), periodo)
	if err != nil {
		u.log.Warnf("Failed to compute venda stats: %+v", err)
		return nil, err
	}

	return &dto.VendaListResponse{
		Vendas:     converter.VendasDetalhadasToResponses(vendas),
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
		Estatisticas: dto.VendaEstatisticas{
			TotalVendas:      resumo.TotalVendas,
			FaturamentoTotal: resumo.Faturamento,
			TicketMedio:      resumo.TicketMedio,
		},
	}, nil
}
