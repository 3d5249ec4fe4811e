package services

import (
	"strings"
	"testing"

	"cotas/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func novaCota(id int, codigo, categoria string, credito, entrada, saldo float64, parcelas int,
	valorParcela float64, vencimento, adminID int, reserva string) models.Cota {
	return models.Cota{
		ID:               id,
		Codigo:           sptr(codigo),
		Categoria:        sptr(categoria),
		ValorCredito:     fptr(credito),
		Entrada:          fptr(entrada),
		Saldo:            fptr(saldo),
		Parcelas:         iptr(parcelas),
		ValorParcela:     fptr(valorParcela),
		Vencimento:       iptr(vencimento),
		Reserva:          sptr(reserva),
		AdministradoraID: iptr(adminID),
	}
}

func TestValidateConjunto(t *testing.T) {
	t.Run("should accept a homogeneous bundle", func(t *testing.T) {
		cotas := []models.Cota{
			novaCota(1, "A1", models.CategoriaAuto, 10000, 1000, 9000, 6, 500, 10, 1, "disponivel"),
			novaCota(2, "A2", models.CategoriaAuto, 20000, 2000, 18000, 12, 700, 5, 1, "disponivel"),
		}
		assert.NoError(t, ValidateConjunto(cotas, true))
	})

	t.Run("should name the missing field and the cota", func(t *testing.T) {
		cotas := []models.Cota{
			novaCota(1, "A1", models.CategoriaAuto, 10000, 1000, 9000, 6, 500, 10, 1, "disponivel"),
		}
		cotas[0].Saldo = nil

		err := ValidateConjunto(cotas, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Campo ausente ou nulo: saldo na cota 1")
	})

	t.Run("should reject mixed administradoras", func(t *testing.T) {
		cotas := []models.Cota{
			novaCota(1, "A1", models.CategoriaAuto, 10000, 1000, 9000, 6, 500, 10, 1, "disponivel"),
			novaCota(2, "A2", models.CategoriaAuto, 20000, 2000, 18000, 12, 700, 5, 2, "disponivel"),
		}

		err := ValidateConjunto(cotas, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "administradoras ou categorias diferentes")

		err = ValidateConjunto(cotas, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "administradoras diferentes")
	})

	t.Run("should reject mixed categorias only when required", func(t *testing.T) {
		cotas := []models.Cota{
			novaCota(1, "A1", models.CategoriaAuto, 10000, 1000, 9000, 6, 500, 10, 1, "disponivel"),
			novaCota(2, "I1", models.CategoriaImovel, 80000, 8000, 70000, 120, 900, 5, 1, "disponivel"),
		}

		assert.Error(t, ValidateConjunto(cotas, true))
		assert.NoError(t, ValidateConjunto(cotas, false))
	})
}

func TestSomarCotas(t *testing.T) {
	cotas := []models.Cota{
		novaCota(1, "C1", models.CategoriaAuto, 10000, 1000, 9000, 6, 500, 15, 1, "disponivel"),
		novaCota(2, "C2", models.CategoriaAuto, 20000, 2000, 18000, 12, 700, 10, 1, "disponivel"),
		novaCota(3, "C3", models.CategoriaAuto, 30000, 3000, 27000, 6, 900, 20, 1, "disponivel"),
	}

	resultado := SomarCotas(cotas, "Consórcio Nacional")

	t.Run("should sum credits, entries and balances", func(t *testing.T) {
		assert.InDelta(t, 60000.0, resultado.TotalCredito, 0.001)
		assert.InDelta(t, 6000.0, resultado.TotalEntrada, 0.001)
		assert.InDelta(t, 54000.0, resultado.TotalSaldo, 0.001)
	})

	t.Run("should take the maximum installment count, not the sum", func(t *testing.T) {
		assert.Equal(t, 12, resultado.TotalParcelas)
		assert.Equal(t, 12, resultado.MediaParcelas)
	})

	t.Run("should average the installment value", func(t *testing.T) {
		assert.InDelta(t, 700.0, resultado.MediaValorParcela, 0.001)
	})

	t.Run("should alias commission to the total entry", func(t *testing.T) {
		assert.InDelta(t, resultado.TotalEntrada, resultado.TotalComissao, 0.001)
		assert.InDelta(t, 10.0, resultado.TotalEntradaporcem, 0.001)
	})

	t.Run("should derive the aggregate metrics from the totals", func(t *testing.T) {
		assert.InDelta(t, 54000.0, resultado.CreditoReal, 0.001) // 60000 - 6000
		assert.InDelta(t, 60000.0, resultado.ValorFinal, 0.001)  // 54000 + 6000
		assert.InDelta(t, 0.0, resultado.Taxa, 0.001)            // 54000 - 54000
		assert.Zero(t, resultado.Taxaporcem)
		assert.Zero(t, resultado.JMensal)
	})

	t.Run("should keep the smallest due day", func(t *testing.T) {
		assert.Equal(t, 10, resultado.MenorVencimento)
	})

	t.Run("should list line items in input order", func(t *testing.T) {
		require.Len(t, resultado.Detalhes, 3)
		assert.Equal(t, "C1", resultado.Detalhes[0].Codigo)
		assert.Equal(t, "C2", resultado.Detalhes[1].Codigo)
		assert.Equal(t, "C3", resultado.Detalhes[2].Codigo)
		assert.Equal(t, "Auto", resultado.Detalhes[0].Categoria)
	})

	t.Run("should render the shareable summary", func(t *testing.T) {
		assert.Contains(t, resultado.LinkShare, "ADMINISTRADORA: Consórcio Nacional")
		assert.Contains(t, resultado.LinkShare, "CRÉDITO TOTAL: R$ 60.000,00")
		assert.Contains(t, resultado.LinkShare, "ENTRADA TOTAL: R$ 6.000,00 (10,00%)")
		assert.Contains(t, resultado.LinkShare, "PARCELAS TOTAIS: 12x")
		assert.Contains(t, resultado.LinkShare, "DIA DO VENCIMENTO: 10")
		assert.Contains(t, resultado.LinkShare, "CARTAS SELECIONADAS:")
		assert.Contains(t, resultado.LinkShare, "N°: C1 Auto R$ 10.000,00")
		assert.NotContains(t, resultado.LinkShare, "FUNDO COMUM")
	})

	t.Run("should flag availability", func(t *testing.T) {
		assert.True(t, resultado.Disponivel)
	})
}

func TestSomarCotasImovel(t *testing.T) {
	cotas := []models.Cota{
		novaCota(1, "I1", models.CategoriaImovel, 100000, 10000, 90000, 120, 900, 5, 2, models.ReservaReservado),
	}

	resultado := SomarCotas(cotas, "Administradora X")

	assert.Equal(t, "Imóvel", resultado.Categoria)
	assert.False(t, resultado.Disponivel)

	// Property bundles carry the two consult-us lines before the item list.
	assert.Contains(t, resultado.LinkShare, "FUNDO COMUM: À Consultar")
	assert.Contains(t, resultado.LinkShare, "AVALIAÇÃO DO IMÓVEL: À Consultar")
	idx := strings.Index(resultado.LinkShare, "FUNDO COMUM")
	assert.Less(t, idx, strings.Index(resultado.LinkShare, "CARTAS SELECIONADAS"))
}

func TestResumoNegociacao(t *testing.T) {
	cotas := []models.Cota{
		novaCota(1, "C1", models.CategoriaAuto, 10000, 1000, 9000, 6, 500, 15, 1, "disponivel"),
		novaCota(2, "I1", models.CategoriaImovel, 80000, 8000, 70000, 120, 900, 5, 1, models.ReservaReservado),
	}

	t.Run("should default the contact type", func(t *testing.T) {
		resumo := ResumoNegociacao(cotas, "Administradora X", "")
		assert.Equal(t, "negociar", resumo.TipoContato)
	})

	t.Run("should echo the provided contact type", func(t *testing.T) {
		resumo := ResumoNegociacao(cotas, "Administradora X", "whatsapp")
		assert.Equal(t, "whatsapp", resumo.TipoContato)
	})

	t.Run("should summarize the bundle", func(t *testing.T) {
		resumo := ResumoNegociacao(cotas, "Administradora X", "negociar")

		assert.Equal(t, "Administradora X", resumo.Admin)
		assert.Equal(t, 2, resumo.QuantidadeCotas)
		require.Len(t, resumo.Cotas, 2)
		assert.Equal(t, "Imóvel", resumo.Cotas[1].Categoria)
		assert.InDelta(t, 90000.0, resumo.TotalCredito, 0.001)
		assert.InDelta(t, 9000.0, resumo.TotalEntrada, 0.001)
		assert.False(t, resumo.Disponivel)
	})
}
