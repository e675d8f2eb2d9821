package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto represents an inventory item with stock count and pricing.
// Quantidade is never allowed below zero; sale-driven decrements happen
// inside the sale transaction under a row lock.
type Produto struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nome           string          `gorm:"type:varchar(255);not null" json:"nome"`
	Descricao      string          `gorm:"type:text" json:"descricao"`
	Quantidade     int             `gorm:"not null;default:0" json:"quantidade"`
	ValorVenda     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor_venda"`
	ValorAquisicao decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"valor_aquisicao"`
	CriadoEm       time.Time       `gorm:"autoCreateTime" json:"criado_em"`
	AtualizadoEm   time.Time       `gorm:"autoUpdateTime" json:"atualizado_em"`
}

func (Produto) TableName() string {
	return "produtos"
}

// TemEstoque checks whether the product can cover a sale of the given quantity.
func (p *Produto) TemEstoque(quantidade int) bool {
	return p.Quantidade >= quantidade
}
