package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProdutoRequest struct {
	Nome           string          `json:"nome" validate:"required,min=1"`
	Descricao      string          `json:"descricao"`
	Quantidade     int             `json:"quantidade" validate:"gte=0"`
	ValorVenda     decimal.Decimal `json:"valor_venda" validate:"required"`
	ValorAquisicao decimal.Decimal `json:"valor_aquisicao"`
}

// UpdateProdutoRequest uses pointers for partial-update semantics: a nil field
// leaves the column unchanged.
type UpdateProdutoRequest struct {
	Nome           *string          `json:"nome" validate:"omitempty,min=1"`
	Descricao      *string          `json:"descricao"`
	Quantidade     *int             `json:"quantidade" validate:"omitempty,gte=0"`
	ValorVenda     *decimal.Decimal `json:"valor_venda"`
	ValorAquisicao *decimal.Decimal `json:"valor_aquisicao"`
}

// Response DTOs

type ProdutoResponse struct {
	ID             uuid.UUID       `json:"id"`
	Nome           string          `json:"nome"`
	Descricao      string          `json:"descricao"`
	Quantidade     int             `json:"quantidade"`
	ValorVenda     decimal.Decimal `json:"valor_venda"`
	ValorAquisicao decimal.Decimal `json:"valor_aquisicao"`
	CriadoEm       time.Time       `json:"criado_em"`
	AtualizadoEm   time.Time       `json:"atualizado_em"`
}

type ProdutoListResponse struct {
	Produtos   []ProdutoResponse `json:"produtos"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

type DeleteProdutoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
