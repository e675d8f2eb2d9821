package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateVendaRequest deliberately has no valor_total field: the total is
// computed server-side from quantidade * valor_unitario.
type CreateVendaRequest struct {
	ProdutoID      uuid.UUID       `json:"produto_id" validate:"required"`
	ProdutoNome    string          `json:"produto_nome" validate:"required"`
	Quantidade     int             `json:"quantidade" validate:"required,gt=0"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario" validate:"required"`
	FormaPagamento string          `json:"forma_pagamento"`
}

// Response DTOs

type VendaResponse struct {
	ID                  uuid.UUID       `json:"id"`
	ProdutoID           *uuid.UUID      `json:"produto_id"`
	ProdutoNome         string          `json:"produto_nome"`
	Quantidade          int             `json:"quantidade"`
	ValorUnitario       decimal.Decimal `json:"valor_unitario"`
	ValorTotal          decimal.Decimal `json:"valor_total"`
	FormaPagamento      string          `json:"forma_pagamento"`
	DataVenda           time.Time       `json:"data_venda"`
	ProdutoNomeCompleto *string         `json:"produto_nome_completo,omitempty"`
}

type VendaEstatisticas struct {
	TotalVendas      int64           `json:"total_vendas"`
	FaturamentoTotal decimal.Decimal `json:"faturamento_total"`
	TicketMedio      decimal.Decimal `json:"ticket_medio"`
}

type VendaListResponse struct {
	Vendas       []VendaResponse   `json:"vendas"`
	Total        int64             `json:"total"`
	Page         int               `json:"page"`
	TotalPages   int               `json:"total_pages"`
	Estatisticas VendaEstatisticas `json:"estatisticas"`
}

// EstoqueInsuficienteResponse is the 400 body for oversell attempts, carrying
// the quantity still available.
type EstoqueInsuficienteResponse struct {
	Error             string `json:"error"`
	EstoqueDisponivel int    `json:"estoque_disponivel"`
}
