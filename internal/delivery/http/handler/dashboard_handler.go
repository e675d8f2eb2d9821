package handler

import (
	"net/http"

	"pdv-estoque-api/internal/domain/entity"
	"pdv-estoque-api/internal/usecase"
	"pdv-estoque-api/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// Get handles GET /dashboard?periodo=
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	periodo := entity.ParsePeriodo(r.URL.Query().Get("periodo"))

	report, err := h.dashboardUsecase.GetDashboard(r.Context(), periodo)
	if err != nil {
		response.Internal(w, err)
		return
	}

	response.JSON(w, http.StatusOK, report)
}
