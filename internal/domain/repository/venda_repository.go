package repository

import (
	"pdv-estoque-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendaRepository covers the write path (inside the sale transaction) and the
// reporting aggregates. Sales are insert-only; there is no update or delete.
type VendaRepository interface {
	Create(db *gorm.DB, venda *entity.Venda) error
	FindAll(db *gorm.DB, periodo entity.Periodo, limit, offset int) ([]entity.VendaDetalhada, int64, error)
	FindUltimas(db *gorm.DB, limit int) ([]entity.VendaDetalhada, error)
	CountByProdutoID(db *gorm.DB, produtoID uuid.UUID) (int64, error)
	Resumo(db *gorm.DB, periodo entity.Periodo) (*entity.ResumoVendas, error)
	MaisVendidos(db *gorm.DB, periodo entity.Periodo, limit int) ([]entity.ProdutoMaisVendido, error)
	// HorarioPico returns nil when the window has no sales.
	HorarioPico(db *gorm.DB, periodo entity.Periodo) (*entity.HorarioPico, error)
	VendasPorDia(db *gorm.DB, dias int) ([]entity.VendaDiaria, error)
}
