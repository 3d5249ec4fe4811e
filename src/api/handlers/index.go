package handlers

import (
	"context"
	"net/http"

	"cotas/src/schemas"
	"cotas/src/services"
	"cotas/src/utils"
)

// indexCotaView is the pre-formatted representation of a featured cota on the
// landing page.
type indexCotaView struct {
	Codigo    string
	Categoria string
	Credito   string
	Parcelas  int
	Admin     string
}

// Index renders the landing page with the cached featured cotas. A backend
// failure degrades to an empty listing instead of an error page.
// GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var views []indexCotaView
	cotas, err := h.Controller.FeaturedCotas(ctx)
	if err != nil {
		h.Logger.Error("error loading featured cotas: ", err)
		cotas = nil
	}
	for _, cota := range cotas {
		views = append(views, newIndexCotaView(cota))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.indexTmpl.Execute(w, map[string]interface{}{"Cotas": views}); err != nil {
		h.Logger.Error("error rendering index: ", err)
	}
}

func newIndexCotaView(cota schemas.CotaWithAdmin) indexCotaView {
	view := indexCotaView{Admin: cota.Admin}
	if cota.Codigo != nil {
		view.Codigo = *cota.Codigo
	}
	if cota.Categoria != nil {
		view.Categoria = services.CategoriaLabel(*cota.Categoria)
	}
	if cota.ValorCredito != nil {
		view.Credito = utils.FormatBRL(*cota.ValorCredito)
	}
	if cota.Parcelas != nil {
		view.Parcelas = *cota.Parcelas
	}
	return view
}
