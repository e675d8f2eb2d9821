package repository

import (
	"pdv-estoque-api/internal/domain/entity"
	domainRepo "pdv-estoque-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vendaRepository struct{}

func NewVendaRepository() domainRepo.VendaRepository {
	return &vendaRepository{}
}

func (r *vendaRepository) Create(db *gorm.DB, venda *entity.Venda) error {
	return db.Create(venda).Error
}

func (r *vendaRepository) FindAll(db *gorm.DB, periodo entity.Periodo, limit, offset int) ([]entity.VendaDetalhada, int64, error) {
	var vendas []entity.VendaDetalhada
	var total int64

	if err := db.Model(&entity.Venda{}).Scopes(periodo.Scope()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Model(&entity.Venda{}).
		Select("vendas.*, produtos.nome AS produto_nome_completo").
		Joins("LEFT JOIN produtos ON produtos.id = vendas.produto_id").
		Scopes(periodo.Scope()).
		Order("vendas.data_venda DESC").
		Limit(limit).
		Offset(offset).
		Scan(&vendas).Error
	if err != nil {
		return nil, 0, err
	}

	return vendas, total, nil
}

func (r *vendaRepository) FindUltimas(db *gorm.DB, limit int) ([]entity.VendaDetalhada, error) {
	var vendas []entity.VendaDetalhada
	err := db.Model(&entity.Venda{}).
		Select("vendas.*, produtos.nome AS produto_nome_completo").
		Joins("LEFT JOIN produtos ON produtos.id = vendas.produto_id").
		Order("vendas.data_venda DESC").
		Limit(limit).
		Scan(&vendas).Error
	return vendas, err
}

func (r *vendaRepository) CountByProdutoID(db *gorm.DB, produtoID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Venda{}).Where("produto_id = ?", produtoID).Count(&count).Error
	return count, err
}

func (r *vendaRepository) Resumo(db *gorm.DB, periodo entity.Periodo) (*entity.ResumoVendas, error) {
	var resumo entity.ResumoVendas
	err := db.Model(&entity.Venda{}).
		Select("COUNT(*) AS total_vendas, COALESCE(SUM(valor_total), 0) AS faturamento, COALESCE(AVG(valor_total), 0) AS ticket_medio").
		Scopes(periodo.Scope()).
		Scan(&resumo).Error
	if err != nil {
		return nil, err
	}
	return &resumo, nil
}

func (r *vendaRepository) MaisVendidos(db *gorm.DB, periodo entity.Periodo, limit int) ([]entity.ProdutoMaisVendido, error) {
	var ranking []entity.ProdutoMaisVendido
	err := db.Model(&entity.Venda{}).
		Select("produtos.nome, SUM(vendas.quantidade) AS total_vendido, SUM(vendas.valor_total) AS faturamento_total").
		Joins("JOIN produtos ON produtos.id = vendas.produto_id").
		Scopes(periodo.Scope()).
		Group("produtos.id, produtos.nome").
		Order("total_vendido DESC").
		Limit(limit).
		Scan(&ranking).Error
	return ranking, err
}

func (r *vendaRepository) HorarioPico(db *gorm.DB, periodo entity.Periodo) (*entity.HorarioPico, error) {
	var picos []entity.HorarioPico
	err := db.Model(&entity.Venda{}).
		Select("EXTRACT(HOUR FROM vendas.data_venda)::int AS hora, COUNT(*) AS total_vendas, COALESCE(SUM(valor_total), 0) AS faturamento").
		Scopes(periodo.Scope()).
		Group("EXTRACT(HOUR FROM vendas.data_venda)").
		Order("total_vendas DESC").
		Limit(1).
		Scan(&picos).Error
	if err != nil {
		return nil, err
	}
	if len(picos) == 0 {
		return nil, nil
	}
	return &picos[0], nil
}

func (r *vendaRepository) VendasPorDia(db *gorm.DB, dias int) ([]entity.VendaDiaria, error) {
	var serie []entity.VendaDiaria
	// The inclusive bound reaches back into one extra calendar date, so cap
	// the series at dias rows; DESC order keeps the most recent ones.
	err := db.Model(&entity.Venda{}).
		Select("DATE(vendas.data_venda) AS data, COUNT(*) AS total_vendas, COALESCE(SUM(valor_total), 0) AS faturamento").
		Where("vendas.data_venda >= CURRENT_DATE - INTERVAL '1 day' * ?", dias).
		Group("DATE(vendas.data_venda)").
		Order("data DESC").
		Limit(dias).
		Scan(&serie).Error
	return serie, err
}
