package repository

import (
	"errors"

	"pdv-estoque-api/internal/domain/entity"
	domainRepo "pdv-estoque-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type produtoRepository struct{}

func NewProdutoRepository() domainRepo.ProdutoRepository {
	return &produtoRepository{}
}

func (r *produtoRepository) Create(db *gorm.DB, produto *entity.Produto) error {
	return db.Create(produto).Error
}

func (r *produtoRepository) FindAll(db *gorm.DB, search string, limit, offset int) ([]entity.Produto, int64, error) {
	var produtos []entity.Produto
	var total int64

	query := db.Model(&entity.Produto{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("nome ILIKE ? OR descricao ILIKE ?", term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("criado_em DESC").Limit(limit).Offset(offset).Find(&produtos).Error; err != nil {
		return nil, 0, err
	}

	return produtos, total, nil
}

func (r *produtoRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Produto, error) {
	var produto entity.Produto
	err := db.Where("id = ?", id).First(&produto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &produto, nil
}

func (r *produtoRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Produto, error) {
	var produto entity.Produto
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&produto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &produto, nil
}

func (r *produtoRepository) Update(db *gorm.DB, produto *entity.Produto) error {
	return db.Save(produto).Error
}

func (r *produtoRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Produto{}).Error
}

func (r *produtoRepository) ResumoEstoque(db *gorm.DB, limiteCritico int) (*entity.ResumoEstoque, error) {
	var resumo entity.ResumoEstoque
	err := db.Model(&entity.Produto{}).
		Select("COUNT(*) AS total_cadastrados, COALESCE(SUM(quantidade), 0) AS total_estoque, COUNT(CASE WHEN quantidade < ? THEN 1 END) AS criticos", limiteCritico).
		Scan(&resumo).Error
	if err != nil {
		return nil, err
	}
	return &resumo, nil
}

func (r *produtoRepository) FindEstoqueBaixo(db *gorm.DB, limiteCritico, limit int) ([]entity.Produto, error) {
	var produtos []entity.Produto
	err := db.Model(&entity.Produto{}).
		Where("quantidade < ?", limiteCritico).
		Order("quantidade ASC").
		Limit(limit).
		Find(&produtos).Error
	return produtos, err
}
