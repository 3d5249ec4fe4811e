package services

import (
	"fmt"
	"strings"

	"cotas/src/models"
	"cotas/src/schemas"
	"cotas/src/utils"
)

// requiredCampos lists, in validation order, the fields a cota must carry
// before it can take part in an aggregate or negotiation request.
var requiredCampos = []struct {
	nome    string
	missing func(c *models.Cota) bool
}{
	{"valor_credito", func(c *models.Cota) bool { return c.ValorCredito == nil }},
	{"entrada", func(c *models.Cota) bool { return c.Entrada == nil }},
	{"saldo", func(c *models.Cota) bool { return c.Saldo == nil }},
	{"parcelas", func(c *models.Cota) bool { return c.Parcelas == nil }},
	{"valor_parcela", func(c *models.Cota) bool { return c.ValorParcela == nil }},
	{"administradora_id", func(c *models.Cota) bool { return c.AdministradoraID == nil }},
	{"categoria", func(c *models.Cota) bool { return c.Categoria == nil }},
	{"vencimento", func(c *models.Cota) bool { return c.Vencimento == nil }},
	{"codigo", func(c *models.Cota) bool { return c.Codigo == nil }},
}

// ValidateConjunto checks that every cota carries the fields required for
// valuation and that the bundle is homogeneous: always a single
// administradora, and a single categoria when exigirMesmaCategoria is set.
// The first missing field fails the whole request, naming field and cota.
func ValidateConjunto(cotas []models.Cota, exigirMesmaCategoria bool) error {
	for i := range cotas {
		c := &cotas[i]
		for _, campo := range requiredCampos {
			if campo.missing(c) {
				return utils.BadRequest(fmt.Sprintf("Campo ausente ou nulo: %s na cota %d", campo.nome, c.ID))
			}
		}
	}

	primeiraAdmin := *cotas[0].AdministradoraID
	for i := range cotas {
		if *cotas[i].AdministradoraID != primeiraAdmin {
			if exigirMesmaCategoria {
				return utils.BadRequest("As cotas selecionadas têm administradoras ou categorias diferentes")
			}
			return utils.BadRequest("As cotas selecionadas têm administradoras diferentes")
		}
	}
	if exigirMesmaCategoria {
		primeiraCategoria := *cotas[0].Categoria
		for i := range cotas {
			if *cotas[i].Categoria != primeiraCategoria {
				return utils.BadRequest("As cotas selecionadas têm administradoras ou categorias diferentes")
			}
		}
	}
	return nil
}

// SomarCotas aggregates a validated, homogeneous bundle into totals, derived
// metrics, per-cota line items and the shareable text summary. Total
// installments take the maximum count across the bundle, not the sum.
func SomarCotas(cotas []models.Cota, nomeAdmin string) *schemas.SomarCotasResponse {
	var totalCredito, totalEntrada, totalSaldo, totalValorParcela float64
	totalParcelas := 0
	menorVencimento := *cotas[0].Vencimento

	detalhes := make([]schemas.CotaDetalhe, 0, len(cotas))
	for i := range cotas {
		c := &cotas[i]
		totalCredito += *c.ValorCredito
		totalEntrada += *c.Entrada
		totalSaldo += *c.Saldo
		totalValorParcela += *c.ValorParcela
		if *c.Parcelas > totalParcelas {
			totalParcelas = *c.Parcelas
		}
		if *c.Vencimento < menorVencimento {
			menorVencimento = *c.Vencimento
		}
		detalhes = append(detalhes, schemas.CotaDetalhe{
			Codigo:       *c.Codigo,
			Credito:      *c.ValorCredito,
			Categoria:    CategoriaLabel(*c.Categoria),
			Parcelas:     *c.Parcelas,
			ValorParcela: *c.ValorParcela,
			Saldo:        *c.Saldo,
			Entrada:      *c.Entrada,
		})
	}

	mediaValorParcela := totalValorParcela / float64(len(cotas))

	// At the aggregate level the commission is the total down payment, not
	// the per-cota 8.5% formula.
	totalComissao := totalEntrada
	var totalEntradaporcem float64
	if totalCredito != 0 {
		totalEntradaporcem = totalComissao / totalCredito * 100
	}
	creditoReal := totalCredito - totalComissao
	valorFinal := totalSaldo + totalComissao
	taxa := totalSaldo - creditoReal
	var taxaporcem float64
	if creditoReal != 0 {
		taxaporcem = taxa / creditoReal * 100
	}
	var jMensal float64
	if totalParcelas != 0 {
		jMensal = taxaporcem / float64(totalParcelas)
	}
	jAnual := jMensal * 12

	primeiraCategoria := *cotas[0].Categoria

	return &schemas.SomarCotasResponse{
		Admin:              nomeAdmin,
		Categoria:          CategoriaLabel(primeiraCategoria),
		TotalCredito:       totalCredito,
		TotalEntrada:       totalEntrada,
		TotalComissao:      totalComissao,
		TotalEntradaporcem: totalEntradaporcem,
		TotalSaldo:         totalSaldo,
		TotalParcelas:      totalParcelas,
		MediaParcelas:      totalParcelas,
		MediaValorParcela:  mediaValorParcela,
		MenorVencimento:    menorVencimento,
		CreditoReal:        creditoReal,
		ValorFinal:         valorFinal,
		Taxa:               taxa,
		Taxaporcem:         taxaporcem,
		JMensal:            jMensal,
		JAnual:             jAnual,
		Detalhes:           detalhes,
		LinkShare: buildLinkShare(nomeAdmin, primeiraCategoria, totalCredito, totalComissao,
			totalEntradaporcem, totalParcelas, mediaValorParcela, totalSaldo, menorVencimento, detalhes),
		Disponivel: Disponivel(cotas),
	}
}

// buildLinkShare renders the shareable plain-text summary of a bundle.
func buildLinkShare(nomeAdmin, categoria string, totalCredito, totalComissao, totalEntradaporcem float64,
	totalParcelas int, mediaValorParcela, totalSaldo float64, menorVencimento int,
	detalhes []schemas.CotaDetalhe) string {

	var b strings.Builder
	fmt.Fprintf(&b, "ADMINISTRADORA: %s\n", nomeAdmin)
	fmt.Fprintf(&b, "CRÉDITO TOTAL: %s\n", utils.FormatBRL(totalCredito))
	fmt.Fprintf(&b, "ENTRADA TOTAL: %s (%s)\n", utils.FormatBRL(totalComissao), utils.FormatPercent(totalEntradaporcem))
	fmt.Fprintf(&b, "PARCELAS TOTAIS: %dx\n", totalParcelas)
	fmt.Fprintf(&b, "VALOR MÉDIO DA PARCELA: %s\n", utils.FormatBRL(mediaValorParcela))
	fmt.Fprintf(&b, "SALDO DEVEDOR TOTAL: %s\n", utils.FormatBRL(totalSaldo))
	fmt.Fprintf(&b, "DIA DO VENCIMENTO: %d\n", menorVencimento)

	if categoria == models.CategoriaImovel {
		b.WriteString("FUNDO COMUM: À Consultar\n")
		b.WriteString("AVALIAÇÃO DO IMÓVEL: À Consultar\n")
	}

	b.WriteString("CARTAS SELECIONADAS:\n")
	for _, item := range detalhes {
		fmt.Fprintf(&b, "N°: %s %s %s\n", item.Codigo, item.Categoria, utils.FormatBRL(item.Credito))
	}
	return b.String()
}

// ResumoNegociacao builds the abbreviated summary returned when a visitor
// starts a negotiation over a validated bundle. Unlike SomarCotas, mixed
// categories are allowed.
func ResumoNegociacao(cotas []models.Cota, nomeAdmin, tipoContato string) *schemas.IniciarNegociacaoResponse {
	if tipoContato == "" {
		tipoContato = "negociar"
	}

	var totalCredito, totalEntrada float64
	resumoCotas := make([]schemas.NegociacaoCota, 0, len(cotas))
	for i := range cotas {
		c := &cotas[i]
		totalCredito += *c.ValorCredito
		totalEntrada += *c.Entrada
		resumoCotas = append(resumoCotas, schemas.NegociacaoCota{
			Codigo:       *c.Codigo,
			Categoria:    CategoriaLabel(*c.Categoria),
			Credito:      *c.ValorCredito,
			Entrada:      *c.Entrada,
			Parcelas:     *c.Parcelas,
			ValorParcela: *c.ValorParcela,
		})
	}

	return &schemas.IniciarNegociacaoResponse{
		TipoContato:     tipoContato,
		Admin:           nomeAdmin,
		QuantidadeCotas: len(cotas),
		Cotas:           resumoCotas,
		TotalCredito:    totalCredito,
		TotalEntrada:    totalEntrada,
		Disponivel:      Disponivel(cotas),
	}
}
