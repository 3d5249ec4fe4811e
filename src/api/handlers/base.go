package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"cotas/src/api/controllers"
	"cotas/src/repositories"
	"cotas/src/utils"

	"github.com/sirupsen/logrus"
)

// requestTimeout bounds every backend call so a stalled store cannot hold a
// request forever.
const requestTimeout = 10 * time.Second

type Handler struct {
	Controller controllers.CotasControllerI
	Logger     *logrus.Logger
	indexTmpl  *template.Template
}

func NewHandler(controller controllers.CotasControllerI, logger *logrus.Logger, templatePath string) (*Handler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}
	return &Handler{Controller: controller, Logger: logger, indexTmpl: tmpl}, nil
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors translates the error taxonomy into HTTP responses. Anything
// not explicitly classified is logged with detail and surfaced generically.
func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	case errors.Is(err, repositories.ErrNotConnected):
		h.Logger.Error("backend unavailable: ", err)
		h.respond(w, nil, map[string]string{"error": "Conexão com o banco de dados não estabelecida"}, http.StatusInternalServerError)
	case errors.As(err, &httpErr):
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	case err != nil:
		h.Logger.Error("unhandled error: ", err)
		h.respond(w, nil, map[string]string{"error": "Erro interno ao processar a requisição"}, http.StatusInternalServerError)
	default:
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}
