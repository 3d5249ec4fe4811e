package repositories

import (
	"testing"

	"cotas/src/schemas"

	"github.com/stretchr/testify/assert"
)

func TestBuildCotasQuery(t *testing.T) {
	t.Run("should select everything when no filter is set", func(t *testing.T) {
		query, args := BuildCotasQuery(schemas.CotaFilter{})

		assert.NotContains(t, query, "WHERE")
		assert.NotContains(t, query, "ORDER BY")
		assert.Empty(t, args)
	})

	t.Run("should treat the todos sentinel as no filter", func(t *testing.T) {
		query, args := BuildCotasQuery(schemas.CotaFilter{TipoBem: schemas.FiltroTodos, Disponibilidade: schemas.FiltroTodos})

		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
	})

	t.Run("should filter by categoria", func(t *testing.T) {
		query, args := BuildCotasQuery(schemas.CotaFilter{TipoBem: "imovel"})

		assert.Contains(t, query, "categoria = $1")
		assert.Equal(t, []any{"imovel"}, args)
	})

	t.Run("should exclude reserved cotas for disponiveis", func(t *testing.T) {
		query, _ := BuildCotasQuery(schemas.CotaFilter{Disponibilidade: schemas.FiltroDisponiveis})

		assert.Contains(t, query, "reserva <> 'reservado'")
	})

	t.Run("should keep only reserved cotas for reservado", func(t *testing.T) {
		query, _ := BuildCotasQuery(schemas.CotaFilter{Disponibilidade: schemas.FiltroReservado})

		assert.Contains(t, query, "reserva = 'reservado'")
	})

	t.Run("should ignore an unknown disponibilidade value", func(t *testing.T) {
		query, _ := BuildCotasQuery(schemas.CotaFilter{Disponibilidade: "qualquer"})

		assert.NotContains(t, query, "reserva")
	})

	t.Run("should turn thresholds into gte predicates", func(t *testing.T) {
		query, args := BuildCotasQuery(schemas.CotaFilter{
			ValorCredito: 50000,
			ValorEntrada: 5000,
			ValorParcela: 800,
		})

		assert.Contains(t, query, "valor_credito >= $1")
		assert.Contains(t, query, "entrada >= $2")
		assert.Contains(t, query, "valor_parcela >= $3")
		assert.Equal(t, []any{50000.0, 5000.0, 800.0}, args)
	})

	t.Run("should conjoin every supplied criterion", func(t *testing.T) {
		query, args := BuildCotasQuery(schemas.CotaFilter{
			TipoBem:         "auto",
			Disponibilidade: schemas.FiltroDisponiveis,
			ValorCredito:    30000,
		})

		assert.Contains(t, query, "categoria = $1")
		assert.Contains(t, query, "reserva <> 'reservado'")
		assert.Contains(t, query, "valor_credito >= $2")
		assert.Contains(t, query, " AND ")
		assert.Equal(t, []any{"auto", 30000.0}, args)
	})
}
