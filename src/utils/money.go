package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a monetary value in pt-BR notation, e.g. "R$ 1.234,56".
func FormatBRL(value float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(value, number.Scale(2)))
}

// FormatPercent renders a percentage with two decimals, e.g. "18,50%".
func FormatPercent(value float64) string {
	return ptBR.Sprintf("%v%%", number.Decimal(value, number.Scale(2)))
}
