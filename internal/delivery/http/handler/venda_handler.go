package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/domain/entity"
	"pdv-estoque-api/internal/usecase"
	"pdv-estoque-api/pkg/response"
	"pdv-estoque-api/pkg/validator"
)

type VendaHandler struct {
	vendaUsecase usecase.VendaUsecase
	validator    *validator.CustomValidator
}

func NewVendaHandler(vendaUsecase usecase.VendaUsecase, validator *validator.CustomValidator) *VendaHandler {
	return &VendaHandler{
		vendaUsecase: vendaUsecase,
		validator:    validator,
	}
}

// List handles GET /vendas?periodo=&page=&limit=
func (h *VendaHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	periodo := entity.ParsePeriodoFiltro(query.Get("periodo"))
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	vendas, err := h.vendaUsecase.List(r.Context(), periodo, page, limit)
	if err != nil {
		response.Internal(w, err)
		return
	}

	response.JSON(w, http.StatusOK, vendas)
}

// Create handles POST /vendas
func (h *VendaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVendaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "JSON mal formado")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ErrorWithDetalhes(w, http.StatusBadRequest, "Campos obrigatórios não preenchidos", h.validator.FormatDetalhes(err))
		return
	}

	venda, err := h.vendaUsecase.Create(r.Context(), &req)
	if err != nil {
		var estoqueErr *usecase.EstoqueInsuficienteError
		switch {
		case errors.Is(err, usecase.ErrProdutoNotFound):
			response.NotFound(w, "Produto não encontrado")
		case errors.As(err, &estoqueErr):
			response.JSON(w, http.StatusBadRequest, dto.EstoqueInsuficienteResponse{
				Error:             "Estoque insuficiente",
				EstoqueDisponivel: estoqueErr.Disponivel,
			})
		case errors.Is(err, usecase.ErrValorUnitarioNegativo):
			response.BadRequest(w, "Valor unitário não pode ser negativo")
		default:
			response.Internal(w, err)
		}
		return
	}

	response.JSON(w, http.StatusCreated, venda)
}
