package converter

import (
	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/domain/entity"
)

func ProdutoToResponse(produto *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:             produto.ID,
		Nome:           produto.Nome,
		Descricao:      produto.Descricao,
		Quantidade:     produto.Quantidade,
		ValorVenda:     produto.ValorVenda,
		ValorAquisicao: produto.ValorAquisicao,
		CriadoEm:       produto.CriadoEm,
		AtualizadoEm:   produto.AtualizadoEm,
	}
}

func ProdutosToResponses(produtos []entity.Produto) []dto.ProdutoResponse {
	responses := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		responses = append(responses, *ProdutoToResponse(&produtos[i]))
	}
	return responses
}
