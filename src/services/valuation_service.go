package services

import (
	"fmt"
	"time"

	"cotas/src/models"
)

// comissaoRate is the commission charged over the credit value, on top of the
// down payment.
const comissaoRate = 0.085

// Valuation holds the derived financial metrics of a cota or of an aggregated
// bundle. Values are computed fresh per request and never persisted.
type Valuation struct {
	Comissao      float64
	Entradaporcem float64
	CreditoReal   float64
	ValorFinal    float64
	Taxa          float64
	Taxaporcem    float64
	JMensal       float64
	JAnual        float64
}

// Valuate computes the metrics for the given credit, down payment, balance
// and installment count. Zero denominators yield zero rates instead of
// dividing.
func Valuate(credito, entrada, saldo float64, parcelas int) Valuation {
	v := Valuation{}
	v.Comissao = credito*comissaoRate + entrada
	if credito != 0 {
		v.Entradaporcem = v.Comissao / credito * 100
	}
	v.CreditoReal = credito - v.Comissao
	v.ValorFinal = v.Comissao + saldo
	v.Taxa = saldo - v.CreditoReal
	if v.CreditoReal != 0 {
		v.Taxaporcem = v.Taxa / v.CreditoReal * 100
	}
	if parcelas != 0 {
		v.JMensal = v.Taxaporcem / float64(parcelas)
	}
	v.JAnual = v.JMensal * 12
	return v
}

// NextDueDate returns the next installment date for the given due day,
// formatted DD/MM/YYYY. When the current day has already passed the due day
// the date rolls to the next month, with December rolling into January of the
// following year.
func NextDueDate(now time.Time, diaVencimento int) string {
	if diaVencimento < 1 || diaVencimento > 31 {
		diaVencimento = 1
	}
	month := int(now.Month())
	year := now.Year()
	if now.Day() > diaVencimento {
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return fmt.Sprintf("%02d/%02d/%04d", diaVencimento, month, year)
}

// CategoriaLabel maps the stored category onto its display label.
func CategoriaLabel(categoria string) string {
	if categoria == models.CategoriaImovel {
		return "Imóvel"
	}
	return "Auto"
}

// Disponivel reports whether a bundle is available, i.e. no cota in it is
// reserved.
func Disponivel(cotas []models.Cota) bool {
	for i := range cotas {
		if cotas[i].Reservada() {
			return false
		}
	}
	return true
}
