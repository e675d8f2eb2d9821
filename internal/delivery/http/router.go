package http

import (
	"net/http"

	"pdv-estoque-api/internal/delivery/http/handler"
	"pdv-estoque-api/internal/delivery/http/middleware"
	"pdv-estoque-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	produtoHandler   *handler.ProdutoHandler
	vendaHandler     *handler.VendaHandler
	dashboardHandler *handler.DashboardHandler
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	produtoHandler *handler.ProdutoHandler,
	vendaHandler *handler.VendaHandler,
	dashboardHandler *handler.DashboardHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		produtoHandler:   produtoHandler,
		vendaHandler:     vendaHandler,
		dashboardHandler: dashboardHandler,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Produtos (id travels as a query param on PUT/DELETE)
	r.router.HandleFunc("/produtos", r.produtoHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/produtos", r.produtoHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/produtos", r.produtoHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/produtos", r.produtoHandler.Delete).Methods(http.MethodDelete)

	// Vendas
	r.router.HandleFunc("/vendas", r.vendaHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/vendas", r.vendaHandler.Create).Methods(http.MethodPost)

	// Dashboard
	r.router.HandleFunc("/dashboard", r.dashboardHandler.Get).Methods(http.MethodGet)

	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w, req.Method)
	})

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"banco":   "PostgreSQL",
		"tabelas": []string{"produtos", "vendas"},
	})
}
