package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdministradoraRepository interface {
	// GetNome resolves the display name of an administradora. The boolean is
	// false when the reference does not resolve.
	GetNome(ctx context.Context, id int) (string, bool, error)
}

type administradoraRepo struct {
	db *pgxpool.Pool
}

func NewAdministradoraRepository(db *pgxpool.Pool) AdministradoraRepository {
	return &administradoraRepo{db: db}
}

func (r *administradoraRepo) GetNome(ctx context.Context, id int) (string, bool, error) {
	if r.db == nil {
		return "", false, ErrNotConnected
	}
	var nome string
	err := r.db.QueryRow(ctx, `SELECT nome FROM administradoras WHERE id = $1`, id).Scan(&nome)
	if err == pgx.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return nome, true, nil
}
