package response

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorBody is the error wire format for every endpoint. Detalhes carries the
// underlying fault message when one exists.
type ErrorBody struct {
	Error    string `json:"error"`
	Detalhes string `json:"detalhes,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message})
}

func ErrorWithDetalhes(w http.ResponseWriter, statusCode int, message, detalhes string) {
	JSON(w, statusCode, ErrorBody{Error: message, Detalhes: detalhes})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Recurso não encontrado"
	}
	Error(w, http.StatusNotFound, message)
}

func MethodNotAllowed(w http.ResponseWriter, method string) {
	Error(w, http.StatusMethodNotAllowed, fmt.Sprintf("Método %s não permitido", method))
}

// Internal surfaces the fault message in detalhes, matching the rest of the
// API's error shape.
func Internal(w http.ResponseWriter, err error) {
	detalhes := ""
	if err != nil {
		detalhes = err.Error()
	}
	ErrorWithDetalhes(w, http.StatusInternalServerError, "Erro interno do servidor", detalhes)
}
