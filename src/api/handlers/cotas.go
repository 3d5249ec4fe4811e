package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"cotas/src/schemas"
	"cotas/src/utils"

	"github.com/go-chi/chi/v5"
)

// FilterCotas lists cotas matching the posted filter object.
// POST /api/cotas
func (h *Handler) FilterCotas(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		h.HandleErrors(w, utils.BadRequest("Content-Type deve ser application/json"))
		return
	}

	var filter schemas.CotaFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		h.HandleErrors(w, utils.BadRequest("Content-Type deve ser application/json"))
		return
	}

	cotas, err := h.Controller.FilterCotas(ctx, filter)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if cotas == nil {
		cotas = []schemas.CotaWithAdmin{}
	}

	h.respond(w, r, cotas, http.StatusOK)
}

// DetalhesCota returns one cota with its derived financial metrics.
// GET /api/detalhes_cota/{id}
func (h *Handler) DetalhesCota(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.HandleErrors(w, utils.BadRequest("Parâmetros inválidos"))
		return
	}

	detalhes, err := h.Controller.DetalhesCota(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, detalhes, http.StatusOK)
}

// SomarCotas aggregates a bundle of cotas into totals and a shareable
// summary.
// POST /api/somar_cotas
func (h *Handler) SomarCotas(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.SomarCotasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.CotasIDs) == 0 {
		h.HandleErrors(w, utils.BadRequest("Nenhum ID de cota fornecido"))
		return
	}

	resultado, err := h.Controller.SomarCotas(ctx, req.CotasIDs)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, resultado, http.StatusOK)
}

// IniciarNegociacao builds the negotiation summary for a bundle of cotas.
// POST /api/iniciar_negociacao
func (h *Handler) IniciarNegociacao(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.IniciarNegociacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.CotasIDs) == 0 {
		h.HandleErrors(w, utils.BadRequest("Nenhum ID de cota fornecido"))
		return
	}

	resumo, err := h.Controller.IniciarNegociacao(ctx, req.CotasIDs, req.TipoContato)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, resumo, http.StatusOK)
}
