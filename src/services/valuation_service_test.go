package services

import (
	"testing"
	"time"

	"cotas/src/models"

	"github.com/stretchr/testify/assert"
)

func TestValuate(t *testing.T) {
	t.Run("should compute the full metric set for a regular cota", func(t *testing.T) {
		v := Valuate(10000, 1000, 9000, 10)

		assert.InDelta(t, 1850.0, v.Comissao, 0.001)
		assert.InDelta(t, 18.5, v.Entradaporcem, 0.001)
		assert.InDelta(t, 8150.0, v.CreditoReal, 0.001)
		assert.InDelta(t, 10850.0, v.ValorFinal, 0.001)
		assert.InDelta(t, 850.0, v.Taxa, 0.001)
		assert.InDelta(t, 10.43, v.Taxaporcem, 0.01)
		assert.InDelta(t, 1.043, v.JMensal, 0.001)
		assert.InDelta(t, 12.52, v.JAnual, 0.01)
	})

	t.Run("should not divide by a zero credit", func(t *testing.T) {
		v := Valuate(0, 500, 1000, 12)

		assert.InDelta(t, 500.0, v.Comissao, 0.001)
		assert.Zero(t, v.Entradaporcem)
		assert.InDelta(t, -500.0, v.CreditoReal, 0.001)
	})

	t.Run("should not divide by a zero net credit", func(t *testing.T) {
		// comissao = 1000*0.085 + 915 = 1000, so credito_real is exactly 0
		v := Valuate(1000, 915, 2000, 12)

		assert.Zero(t, v.CreditoReal)
		assert.Zero(t, v.Taxaporcem)
		assert.Zero(t, v.JMensal)
		assert.Zero(t, v.JAnual)
	})

	t.Run("should not divide by zero installments", func(t *testing.T) {
		v := Valuate(10000, 1000, 9000, 0)

		assert.Zero(t, v.JMensal)
		assert.Zero(t, v.JAnual)
	})
}

func TestNextDueDate(t *testing.T) {
	t.Run("should stay in the current month when the due day has not passed", func(t *testing.T) {
		now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "15/03/2025", NextDueDate(now, 15))
	})

	t.Run("should stay in the current month on the due day itself", func(t *testing.T) {
		now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "15/03/2025", NextDueDate(now, 15))
	})

	t.Run("should roll to the next month when the due day has passed", func(t *testing.T) {
		now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "15/04/2025", NextDueDate(now, 15))
	})

	t.Run("should roll December into January of the next year", func(t *testing.T) {
		now := time.Date(2025, time.December, 28, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "05/01/2026", NextDueDate(now, 5))
	})

	t.Run("should fall back to day 1 for an out-of-range due day", func(t *testing.T) {
		now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "01/07/2025", NextDueDate(now, 0))
		assert.Equal(t, "01/07/2025", NextDueDate(now, 42))
	})
}

func TestCategoriaLabel(t *testing.T) {
	assert.Equal(t, "Imóvel", CategoriaLabel(models.CategoriaImovel))
	assert.Equal(t, "Auto", CategoriaLabel(models.CategoriaAuto))
	assert.Equal(t, "Auto", CategoriaLabel("outro"))
}

func TestDisponivel(t *testing.T) {
	livre := "disponivel"
	reservado := models.ReservaReservado

	t.Run("should be available when no cota is reserved", func(t *testing.T) {
		cotas := []models.Cota{{Reserva: &livre}, {Reserva: nil}}
		assert.True(t, Disponivel(cotas))
	})

	t.Run("should be unavailable when any cota is reserved", func(t *testing.T) {
		cotas := []models.Cota{{Reserva: &livre}, {Reserva: &reservado}}
		assert.False(t, Disponivel(cotas))
	})
}
