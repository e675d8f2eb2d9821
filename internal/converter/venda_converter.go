package converter

import (
	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/domain/entity"
)

func VendaToResponse(venda *entity.Venda) *dto.VendaResponse {
	return &dto.VendaResponse{
		ID:             venda.ID,
		ProdutoID:      venda.ProdutoID,
		ProdutoNome:    venda.ProdutoNome,
		Quantidade:     venda.Quantidade,
		ValorUnitario:  venda.ValorUnitario,
		ValorTotal:     venda.ValorTotal,
		FormaPagamento: venda.FormaPagamento,
		DataVenda:      venda.DataVenda,
	}
}

func VendaDetalhadaToResponse(venda *entity.VendaDetalhada) *dto.VendaResponse {
	response := VendaToResponse(&venda.Venda)
	response.ProdutoNomeCompleto = venda.ProdutoNomeCompleto
	return response
}

func VendasDetalhadasToResponses(vendas []entity.VendaDetalhada) []dto.VendaResponse {
	responses := make([]dto.VendaResponse, 0, len(vendas))
	for i := range vendas {
		responses = append(responses, *VendaDetalhadaToResponse(&vendas[i]))
	}
	return responses
}
