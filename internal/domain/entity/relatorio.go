package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models for the dashboard aggregation queries.

// ResumoVendas holds sale count, revenue and average ticket for a window.
type ResumoVendas struct {
	TotalVendas int64           `json:"total_vendas"`
	Faturamento decimal.Decimal `json:"faturamento"`
	TicketMedio decimal.Decimal `json:"ticket_medio"`
}

// ResumoEstoque holds the inventory totals and the count of products below
// the low-stock threshold.
type ResumoEstoque struct {
	TotalCadastrados int64 `json:"total_cadastrados"`
	TotalEstoque     int64 `json:"total_estoque"`
	Criticos         int64 `json:"criticos"`
}

// ProdutoMaisVendido ranks a product by units sold within a window.
type ProdutoMaisVendido struct {
	Nome             string          `json:"nome"`
	TotalVendido     int64           `json:"total_vendido"`
	FaturamentoTotal decimal.Decimal `json:"faturamento_total"`
}

// HorarioPico is the hour-of-day (0-23) with the most sales in a window.
type HorarioPico struct {
	Hora        int             `json:"hora"`
	TotalVendas int64           `json:"total_vendas"`
	Faturamento decimal.Decimal `json:"faturamento"`
}

// VendaDiaria is one calendar day of the trailing sales series.
type VendaDiaria struct {
	Data        time.Time       `json:"data"`
	TotalVendas int64           `json:"total_vendas"`
	Faturamento decimal.Decimal `json:"faturamento"`
}
