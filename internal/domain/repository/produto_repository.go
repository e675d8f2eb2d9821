package repository

import (
	"pdv-estoque-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository methods take the *gorm.DB so usecases can run them inside
// a transaction (the sale flow) or on the shared handle.
type ProdutoRepository interface {
	Create(db *gorm.DB, produto *entity.Produto) error
	FindAll(db *gorm.DB, search string, limit, offset int) ([]entity.Produto, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Produto, error)
	// FindByIDForUpdate locks the product row (SELECT ... FOR UPDATE),
	// serializing concurrent sales of the same product.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Produto, error)
	Update(db *gorm.DB, produto *entity.Produto) error
	Delete(db *gorm.DB, id uuid.UUID) error
	ResumoEstoque(db *gorm.DB, limiteCritico int) (*entity.ResumoEstoque, error)
	FindEstoqueBaixo(db *gorm.DB, limiteCritico, limit int) ([]entity.Produto, error)
}
