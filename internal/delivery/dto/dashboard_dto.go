package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProdutoMaisVendidoResponse struct {
	Nome             string          `json:"nome"`
	TotalVendido     int64           `json:"total_vendido"`
	FaturamentoTotal decimal.Decimal `json:"faturamento_total"`
}

type ProdutoDoDiaResponse struct {
	Nome        string          `json:"nome"`
	Vendas      int64           `json:"vendas"`
	Faturamento decimal.Decimal `json:"faturamento"`
}

type MelhorPeriodoResponse struct {
	Hora        int   `json:"hora"`
	TotalVendas int64 `json:"total_vendas"`
}

type VendaDiariaResponse struct {
	Data        time.Time       `json:"data"`
	Vendas      int64           `json:"vendas"`
	Faturamento decimal.Decimal `json:"faturamento"`
}

type DashboardResponse struct {
	Periodo string `json:"periodo"`

	// Cards
	VendasHoje      int64           `json:"vendas_hoje"`
	FaturamentoHoje decimal.Decimal `json:"faturamento_hoje"`
	TicketMedio     decimal.Decimal `json:"ticket_medio"`
	LucroHoje       decimal.Decimal `json:"lucro_hoje"`

	// Estoque
	TotalEstoque     int64 `json:"total_estoque"`
	TotalCadastrados int64 `json:"total_cadastrados"`
	EstoqueCriticos  int64 `json:"estoque_criticos"`

	// Listas
	BaixoEstoque         []ProdutoResponse            `json:"baixo_estoque"`
	UltimasVendas        []VendaResponse              `json:"ultimas_vendas"`
	ProdutosMaisVendidos []ProdutoMaisVendidoResponse `json:"produtos_mais_vendidos"`

	// Análises
	ProdutoDoDia  *ProdutoDoDiaResponse `json:"produto_do_dia"`
	MelhorPeriodo MelhorPeriodoResponse `json:"melhor_periodo"`

	// Gráficos
	VendasPorDia []VendaDiariaResponse `json:"vendas_por_dia"`
}
