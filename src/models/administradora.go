package models

type Administradora struct {
	ID   int    `db:"id" json:"id"`
	Nome string `db:"nome" json:"nome"`
}

// NomeAdminDesconhecida is attached to cotas whose administradora reference
// is absent or unresolvable.
const NomeAdminDesconhecida = "Desconhecida"
