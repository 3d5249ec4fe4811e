package models

// Cota is a row of the cotas table. Value columns are nullable in the hosted
// backend, so they are modeled as pointers and validated at use sites.
type Cota struct {
	ID               int      `db:"id" json:"id"`
	Codigo           *string  `db:"codigo" json:"codigo"`
	Categoria        *string  `db:"categoria" json:"categoria"`
	ValorCredito     *float64 `db:"valor_credito" json:"valor_credito"`
	Entrada          *float64 `db:"entrada" json:"entrada"`
	Saldo            *float64 `db:"saldo" json:"saldo"`
	Parcelas         *int     `db:"parcelas" json:"parcelas"`
	ValorParcela     *float64 `db:"valor_parcela" json:"valor_parcela"`
	Vencimento       *int     `db:"vencimento" json:"vencimento"`
	Reserva          *string  `db:"reserva" json:"reserva"`
	AdministradoraID *int     `db:"administradora_id" json:"administradora_id"`
}

const (
	CategoriaImovel = "imovel"
	CategoriaAuto   = "auto"

	ReservaReservado = "reservado"
)

// Reservada reports whether the cota carries the reserved status.
func (c *Cota) Reservada() bool {
	return c.Reserva != nil && *c.Reserva == ReservaReservado
}
