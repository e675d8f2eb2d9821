package usecase

import (
	"context"
	"errors"

	"pdv-estoque-api/internal/converter"
	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/domain/entity"
	"pdv-estoque-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProdutoNotFound = errors.New("produto não encontrado")
	// ErrProdutoComVendas blocks deletion of a product referenced by sales;
	// the sale history must keep a valid snapshot.
	ErrProdutoComVendas = errors.New("não é possível excluir produto com vendas registradas")
)

const defaultPageSize = 50

type ProdutoUsecase interface {
	List(ctx context.Context, search string, page, limit int) (*dto.ProdutoListResponse, error)
	Create(ctx context.Context, req *dto.CreateProdutoRequest) (*dto.ProdutoResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type produtoUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	produtoRepo repository.ProdutoRepository
	vendaRepo   repository.VendaRepository
}

func NewProdutoUsecase(db *gorm.DB, log *logrus.Logger, produtoRepo repository.ProdutoRepository, vendaRepo repository.VendaRepository) ProdutoUsecase {
	return &produtoUsecase{
		db:          db,
		log:         log,
		produtoRepo: produtoRepo,
		vendaRepo:   vendaRepo,
	}
}

func (u *produtoUsecase) List(ctx context.Context, search string, page, limit int) (*dto.ProdutoListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit

	produtos, total, err := u.produtoRepo.FindAll(u.db.WithContext(ctx), search, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list produtos: %+v", err)
		return nil, err
	}

	return &dto.ProdutoListResponse{
		Produtos:   converter.ProdutosToResponses(produtos),
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (u *produtoUsecase) Create(ctx context.Context, req *dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	produto := &entity.Produto{
		Nome:           req.Nome,
		Descricao:      req.Descricao,
		Quantidade:     req.Quantidade,
		ValorVenda:     req.ValorVenda,
		ValorAquisicao: req.ValorAquisicao,
	}

	if err := u.produtoRepo.Create(u.db.WithContext(ctx), produto); err != nil {
		u.log.Warnf("Failed to create produto %q: %+v", req.Nome, err)
		return nil, err
	}

	u.log.Infof("Produto created: id=%s, nome=%s", produto.ID, produto.Nome)
	return converter.ProdutoToResponse(produto), nil
}

func (u *produtoUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := u.produtoRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find produto %s: %+v", id, err)
		return nil, err
	}
	if produto == nil {
		return nil, ErrProdutoNotFound
	}

	// Partial update: nil means leave the field unchanged.
	if req.Nome != nil {
		produto.Nome = *req.Nome
	}
	if req.Descricao != nil {
		produto.Descricao = *req.Descricao
	}
	if req.Quantidade != nil {
		produto.Quantidade = *req.Quantidade
	}
	if req.ValorVenda != nil {
		produto.ValorVenda = *req.ValorVenda
	}
	if req.ValorAquisicao != nil {
		produto.ValorAquisicao = *req.ValorAquisicao
	}

	if err := u.produtoRepo.Update(u.db.WithContext(ctx), produto); err != nil {
		u.log.Warnf("Failed to update produto %s: %+v", id, err)
		return nil, err
	}

	return converter.ProdutoToResponse(produto), nil
}

func (u *produtoUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	produto, err := u.produtoRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find produto %s: %+v", id, err)
		return err
	}
	if produto == nil {
		return ErrProdutoNotFound
	}

	vendas, err := u.vendaRepo.CountByProdutoID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to count vendas for produto %s: %+v", id, err)
		return err
	}
	if vendas > 0 {
		return ErrProdutoComVendas
	}

	if err := u.produtoRepo.Delete(u.db.WithContext(ctx), id); err != nil {
		u.log.Warnf("Failed to delete produto %s: %+v", id, err)
		return err
	}

	u.log.Infof("Produto deleted: id=%s, nome=%s", id, produto.Nome)
	return nil
}

func totalPages(total int64, limit int) int {
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}
