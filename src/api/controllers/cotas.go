package controllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cotas/src/models"
	"cotas/src/schemas"
	"cotas/src/services"
	"cotas/src/utils"

	"github.com/jackc/pgx/v5"
)

const (
	featuredCacheKey = "cotas_destaque"
	featuredLimit    = 4
)

// filterCacheKey derives a deterministic cache key from the filter. Fields
// are serialized in a fixed order so equal filters always hash equally.
func filterCacheKey(filter schemas.CotaFilter) string {
	canonical := fmt.Sprintf("tipo_bem=%s|disponibilidade=%s|valor_credito=%.2f|valor_entrada=%.2f|valor_parcela=%.2f",
		filter.TipoBem, filter.Disponibilidade, filter.ValorCredito, filter.ValorEntrada, filter.ValorParcela)
	return "cotas_" + utils.GenerateUUID(canonical)
}

// resolveAdmin attaches the administradora name of a single cota, defaulting
// to the unknown marker when the reference is absent or unresolvable.
func (c *CotasController) resolveAdmin(ctx context.Context, cota *models.Cota) (string, error) {
	if cota.AdministradoraID == nil {
		return models.NomeAdminDesconhecida, nil
	}
	nome, found, err := c.Admins.GetNome(ctx, *cota.AdministradoraID)
	if err != nil {
		return "", err
	}
	if !found {
		return models.NomeAdminDesconhecida, nil
	}
	return nome, nil
}

// withAdmins resolves the administradora name of each cota individually, one
// lookup per cota.
func (c *CotasController) withAdmins(ctx context.Context, cotas []models.Cota) ([]schemas.CotaWithAdmin, error) {
	result := make([]schemas.CotaWithAdmin, 0, len(cotas))
	for i := range cotas {
		nome, err := c.resolveAdmin(ctx, &cotas[i])
		if err != nil {
			return nil, err
		}
		result = append(result, schemas.CotaWithAdmin{Cota: cotas[i], Admin: nome})
	}
	return result, nil
}

func (c *CotasController) FilterCotas(ctx context.Context, filter schemas.CotaFilter) ([]schemas.CotaWithAdmin, error) {
	key := filterCacheKey(filter)
	if cached, ok := c.Cache.Get(key); ok {
		return cached, nil
	}

	cotas, err := c.Cotas.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result, err := c.withAdmins(ctx, cotas)
	if err != nil {
		return nil, err
	}

	c.Cache.Set(key, result)
	return result, nil
}

func (c *CotasController) FeaturedCotas(ctx context.Context) ([]schemas.CotaWithAdmin, error) {
	if cached, ok := c.Cache.Get(featuredCacheKey); ok {
		return cached, nil
	}

	cotas, err := c.Cotas.Featured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	result, err := c.withAdmins(ctx, cotas)
	if err != nil {
		return nil, err
	}

	c.Cache.Set(featuredCacheKey, result)
	return result, nil
}

func (c *CotasController) DetalhesCota(ctx context.Context, id int) (*schemas.DetalhesCotaResponse, error) {
	cota, err := c.Cotas.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFound("Cota não encontrada")
	}
	if err != nil {
		return nil, err
	}

	nome, err := c.resolveAdmin(ctx, cota)
	if err != nil {
		return nil, err
	}

	// Value fields are required for the calculation; a missing one is bad
	// data on the record, not a backend failure.
	for _, campo := range []struct {
		nome  string
		valor *float64
	}{
		{"valor_credito", cota.ValorCredito},
		{"entrada", cota.Entrada},
		{"saldo", cota.Saldo},
	} {
		if campo.valor == nil {
			return nil, utils.BadRequest(fmt.Sprintf("Erro nos dados da cota: campo ausente ou nulo: %s", campo.nome))
		}
	}

	parcelas := 1
	if cota.Parcelas != nil && *cota.Parcelas >= 1 {
		parcelas = *cota.Parcelas
	}
	diaVencimento := 1
	if cota.Vencimento != nil {
		diaVencimento = *cota.Vencimento
	}

	valuation := services.Valuate(*cota.ValorCredito, *cota.Entrada, *cota.Saldo, parcelas)

	return &schemas.DetalhesCotaResponse{
		Cota:            schemas.CotaWithAdmin{Cota: *cota, Admin: nome},
		DataProxParcela: services.NextDueDate(time.Now(), diaVencimento),
		Comissao:        valuation.Comissao,
		Entradaporcem:   valuation.Entradaporcem,
		CreditoReal:     valuation.CreditoReal,
		ValorFinal:      valuation.ValorFinal,
		Taxa:            valuation.Taxa,
		Taxaporcem:      valuation.Taxaporcem,
		JMensal:         valuation.JMensal,
		JAnual:          valuation.JAnual,
	}, nil
}

// fetchConjunto loads and validates a bundle of cotas and resolves the name
// of their (single) administradora.
func (c *CotasController) fetchConjunto(ctx context.Context, ids []int, exigirMesmaCategoria bool) ([]models.Cota, string, error) {
	fetched, err := c.Cotas.GetByIDs(ctx, ids)
	if err != nil {
		return nil, "", err
	}
	if len(fetched) == 0 {
		return nil, "", utils.NotFound("Nenhuma cota encontrada")
	}

	// Line items follow the request order, not whatever the store returned.
	byID := make(map[int]models.Cota, len(fetched))
	for _, cota := range fetched {
		byID[cota.ID] = cota
	}
	cotas := make([]models.Cota, 0, len(fetched))
	for _, id := range ids {
		if cota, ok := byID[id]; ok {
			cotas = append(cotas, cota)
		}
	}

	if err := services.ValidateConjunto(cotas, exigirMesmaCategoria); err != nil {
		return nil, "", err
	}

	nome, err := c.resolveAdmin(ctx, &cotas[0])
	if err != nil {
		return nil, "", err
	}
	return cotas, nome, nil
}

func (c *CotasController) SomarCotas(ctx context.Context, ids []int) (*schemas.SomarCotasResponse, error) {
	cotas, nome, err := c.fetchConjunto(ctx, ids, true)
	if err != nil {
		return nil, err
	}
	return services.SomarCotas(cotas, nome), nil
}

func (c *CotasController) IniciarNegociacao(ctx context.Context, ids []int, tipoContato string) (*schemas.IniciarNegociacaoResponse, error) {
	cotas, nome, err := c.fetchConjunto(ctx, ids, false)
	if err != nil {
		return nil, err
	}
	return services.ResumoNegociacao(cotas, nome, tipoContato), nil
}
