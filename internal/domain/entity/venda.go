package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FormaPagamentoDinheiro is the default payment method when the caller omits one.
const FormaPagamentoDinheiro = "dinheiro"

// Venda is an immutable record of units sold at a point in time.
// ProdutoNome snapshots the product name at sale time and survives renames;
// ProdutoID is nullable so historical rows outlive denormalized cleanups.
type Venda struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProdutoID      *uuid.UUID      `gorm:"type:uuid;index" json:"produto_id"`
	ProdutoNome    string          `gorm:"type:varchar(255);not null" json:"produto_nome"`
	Quantidade     int             `gorm:"not null" json:"quantidade"`
	ValorUnitario  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor_unitario"`
	ValorTotal     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor_total"`
	FormaPagamento string          `gorm:"type:varchar(50);not null;default:'dinheiro'" json:"forma_pagamento"`
	DataVenda      time.Time       `gorm:"autoCreateTime;index" json:"data_venda"`

	Produto *Produto `gorm:"foreignKey:ProdutoID;constraint:OnDelete:SET NULL" json:"produto,omitempty"`
}

func (Venda) TableName() string {
	return "vendas"
}

// VendaDetalhada is the read model for sale listings, joining the current
// product name (LEFT JOIN, so it stays nil for orphaned sales).
type VendaDetalhada struct {
	Venda
	ProdutoNomeCompleto *string `json:"produto_nome_completo"`
}
