package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/usecase"
	"pdv-estoque-api/pkg/response"
	"pdv-estoque-api/pkg/validator"

	"github.com/google/uuid"
)

type ProdutoHandler struct {
	produtoUsecase usecase.ProdutoUsecase
	validator      *validator.CustomValidator
}

func NewProdutoHandler(produtoUsecase usecase.ProdutoUsecase, validator *validator.CustomValidator) *ProdutoHandler {
	return &ProdutoHandler{
		produtoUsecase: produtoUsecase,
		validator:      validator,
	}
}

// List handles GET /produtos?search=&page=&limit=
func (h *ProdutoHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("search")
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	produtos, err := h.produtoUsecase.List(r.Context(), search, page, limit)
	if err != nil {
		response.Internal(w, err)
		return
	}

	response.JSON(w, http.StatusOK, produtos)
}

// Create handles POST /produtos
func (h *ProdutoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "JSON mal formado")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ErrorWithDetalhes(w, http.StatusBadRequest, "Nome e valor de venda são obrigatórios", h.validator.FormatDetalhes(err))
		return
	}

	produto, err := h.produtoUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Internal(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, produto)
}

// Update handles PUT /produtos?id=
func (h *ProdutoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.produtoID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "JSON mal formado")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ErrorWithDetalhes(w, http.StatusBadRequest, "Campos inválidos", h.validator.FormatDetalhes(err))
		return
	}

	produto, err := h.produtoUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrProdutoNotFound) {
			response.NotFound(w, "Produto não encontrado")
			return
		}
		response.Internal(w, err)
		return
	}

	response.JSON(w, http.StatusOK, produto)
}

// Delete handles DELETE /produtos?id=
func (h *ProdutoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.produtoID(w, r)
	if !ok {
		return
	}

	if err := h.produtoUsecase.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrProdutoNotFound):
			// The delete route only answers 200 or 400.
			response.BadRequest(w, "Produto não encontrado")
		case errors.Is(err, usecase.ErrProdutoComVendas):
			response.BadRequest(w, "Não é possível excluir produto com vendas registradas")
		default:
			response.Internal(w, err)
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.DeleteProdutoResponse{Success: true, Message: "Produto excluído"})
}

func (h *ProdutoHandler) produtoID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		response.BadRequest(w, "ID do produto é obrigatório")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(w, "ID do produto inválido")
		return uuid.Nil, false
	}
	return id, true
}
