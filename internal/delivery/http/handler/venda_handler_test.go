package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/domain/entity"
	"pdv-estoque-api/internal/usecase"
	"pdv-estoque-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVendaHandlerCreate(t *testing.T) {
	t.Run("returns 201 with the recorded sale", func(t *testing.T) {
		produtoID := uuid.New()
		vendaID := uuid.New()
		vendaUsecase := new(MockVendaUsecase)
		vendaUsecase.On("Create", mock.Anything, mock.AnythingOfType("*dto.CreateVendaRequest")).
			Return(&dto.VendaResponse{
				ID:             vendaID,
				ProdutoID:      &produtoID,
				ProdutoNome:    "Café",
				Quantidade:     3,
				ValorUnitario:  decimal.NewFromFloat(5.00),
				ValorTotal:     decimal.NewFromFloat(15.00),
				FormaPagamento: "dinheiro",
			}, nil)

		h := NewVendaHandler(vendaUsecase, validator.NewValidator())
		body := `{"produto_id":"` + produtoID.String() + `","produto_nome":"Café","quantidade":3,"valor_unitario":5.00}`
		req := httptest.NewRequest(http.MethodPost, "/vendas", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp dto.VendaResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, vendaID, resp.ID)
		assert.True(t, resp.ValorTotal.Equal(decimal.NewFromFloat(15.00)))
	})

	t.Run("returns 400 with the available stock on oversell", func(t *testing.T) {
		vendaUsecase := new(MockVendaUsecase)
		vendaUsecase.On("Create", mock.Anything, mock.Anything).
			Return(nil, &usecase.EstoqueInsuficienteError{Disponivel: 7})

		h := NewVendaHandler(vendaUsecase, validator.NewValidator())
		body := `{"produto_id":"` + uuid.NewString() + `","produto_nome":"Café","quantidade":20,"valor_unitario":5.00}`
		req := httptest.NewRequest(http.MethodPost, "/vendas", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Estoque insuficiente", resp["error"])
		assert.Equal(t, float64(7), resp["estoque_disponivel"])
	})

	t.Run("returns 404 for an unknown product", func(t *testing.T) {
		vendaUsecase := new(MockVendaUsecase)
		vendaUsecase.On("Create", mock.Anything, mock.Anything).
			Return(nil, usecase.ErrProdutoNotFound)

		h := NewVendaHandler(vendaUsecase, validator.NewValidator())
		body := `{"produto_id":"` + uuid.NewString() + `","produto_nome":"Fantasma","quantidade":1,"valor_unitario":1.00}`
		req := httptest.NewRequest(http.MethodPost, "/vendas", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Produto não encontrado", resp["error"])
	})

	t.Run("returns 400 when required fields are missing", func(t *testing.T) {
		vendaUsecase := new(MockVendaUsecase)

		h := NewVendaHandler(vendaUsecase, validator.NewValidator())
		req := httptest.NewRequest(http.MethodPost, "/vendas", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Campos obrigatórios não preenchidos", resp["error"])
		assert.NotEmpty(t, resp["detalhes"])
		vendaUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("returns 400 for malformed JSON", func(t *testing.T) {
		vendaUsecase := new(MockVendaUsecase)

		h := NewVendaHandler(vendaUsecase, validator.NewValidator())
		req := httptest.NewRequest(http.MethodPost, "/vendas", strings.NewReader(`{quantidade:`))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVendaHandlerList(t *testing.T) {
	t.Run("defaults to no period filter", func(t *testing.T) {
		vendaUsecase := new(MockVendaUsecase)
		vendaUsecase.On("List", mock.Anything, entity.PeriodoTodos, 0, 0).
			Return(&dto.VendaListResponse{Vendas: []dto.VendaResponse{}, Page: 1}, nil)

		h := NewVendaHandler(vendaUsecase, validator.NewValidator())
		req := httptest.NewRequest(http.MethodGet, "/vendas", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		vendaUsecase.AssertExpectations(t)
	})

	t.Run("forwards period and pagination", func(t *testing.T) {
		vendaUsecase := new(MockVendaUsecase)
		vendaUsecase.On("List", mock.Anything, entity.PeriodoSemana, 2, 10).
			Return(&dto.VendaListResponse{Vendas: []dto.VendaResponse{}, Page: 2}, nil)

		h := NewVendaHandler(vendaUsecase, validator.NewValidator())
		req := httptest.NewRequest(http.MethodGet, "/vendas?periodo=semana&page=2&limit=10", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		vendaUsecase.AssertExpectations(t)
	})

	t.Run("returns 500 when the usecase fails", func(t *testing.T) {
		vendaUsecase := new(MockVendaUsecase)
		vendaUsecase.On("List", mock.Anything, entity.PeriodoTodos, 0, 0).
			Return(nil, assert.AnError)

		h := NewVendaHandler(vendaUsecase, validator.NewValidator())
		req := httptest.NewRequest(http.MethodGet, "/vendas", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Erro interno do servidor", resp["error"])
	})
}
