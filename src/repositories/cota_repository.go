package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cotas/src/models"
	"cotas/src/schemas"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotConnected is returned when the pool was never established at startup.
// The service keeps serving and surfaces the condition per request.
var ErrNotConnected = errors.New("conexão com o banco de dados não estabelecida")

const cotaColumns = `id, codigo, categoria, valor_credito, entrada, saldo, parcelas, valor_parcela, vencimento, reserva, administradora_id`

type CotaRepository interface {
	List(ctx context.Context, filter schemas.CotaFilter) ([]models.Cota, error)
	GetByID(ctx context.Context, id int) (*models.Cota, error)
	GetByIDs(ctx context.Context, ids []int) ([]models.Cota, error)
	Featured(ctx context.Context, limit int) ([]models.Cota, error)
	Ping(ctx context.Context) error
}

type cotaRepo struct {
	db *pgxpool.Pool
}

func NewCotaRepository(db *pgxpool.Pool) CotaRepository {
	return &cotaRepo{db: db}
}

// BuildCotasQuery translates the filter into a conjunctive predicate set over
// the cotas table. Absent or sentinel ("todos") criteria add no predicate and
// no ORDER BY is issued.
func BuildCotasQuery(filter schemas.CotaFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.TipoBem != "" && filter.TipoBem != schemas.FiltroTodos {
		args = append(args, filter.TipoBem)
		conditions = append(conditions, fmt.Sprintf("categoria = $%d", len(args)))
	}
	switch filter.Disponibilidade {
	case schemas.FiltroDisponiveis:
		conditions = append(conditions, "reserva <> 'reservado'")
	case schemas.FiltroReservado:
		conditions = append(conditions, "reserva = 'reservado'")
	}
	if filter.ValorCredito > 0 {
		args = append(args, filter.ValorCredito)
		conditions = append(conditions, fmt.Sprintf("valor_credito >= $%d", len(args)))
	}
	if filter.ValorEntrada > 0 {
		args = append(args, filter.ValorEntrada)
		conditions = append(conditions, fmt.Sprintf("entrada >= $%d", len(args)))
	}
	if filter.ValorParcela > 0 {
		args = append(args, filter.ValorParcela)
		conditions = append(conditions, fmt.Sprintf("valor_parcela >= $%d", len(args)))
	}

	query := "SELECT " + cotaColumns + " FROM cotas"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	return query, args
}

func (r *cotaRepo) List(ctx context.Context, filter schemas.CotaFilter) ([]models.Cota, error) {
	if r.db == nil {
		return nil, ErrNotConnected
	}
	query, args := BuildCotasQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCotas(rows)
}

func (r *cotaRepo) GetByID(ctx context.Context, id int) (*models.Cota, error) {
	if r.db == nil {
		return nil, ErrNotConnected
	}
	var cota models.Cota
	err := r.db.QueryRow(ctx, "SELECT "+cotaColumns+" FROM cotas WHERE id = $1", id).
		Scan(&cota.ID, &cota.Codigo, &cota.Categoria, &cota.ValorCredito, &cota.Entrada, &cota.Saldo,
			&cota.Parcelas, &cota.ValorParcela, &cota.Vencimento, &cota.Reserva, &cota.AdministradoraID)
	if err != nil {
		return nil, err
	}
	return &cota, nil
}

func (r *cotaRepo) GetByIDs(ctx context.Context, ids []int) ([]models.Cota, error) {
	if r.db == nil {
		return nil, ErrNotConnected
	}
	rows, err := r.db.Query(ctx, "SELECT "+cotaColumns+" FROM cotas WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCotas(rows)
}

func (r *cotaRepo) Featured(ctx context.Context, limit int) ([]models.Cota, error) {
	if r.db == nil {
		return nil, ErrNotConnected
	}
	rows, err := r.db.Query(ctx, "SELECT "+cotaColumns+" FROM cotas LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCotas(rows)
}

func (r *cotaRepo) Ping(ctx context.Context) error {
	if r.db == nil {
		return ErrNotConnected
	}
	return r.db.Ping(ctx)
}

type cotaRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanCotas(rows cotaRows) ([]models.Cota, error) {
	var cotas []models.Cota
	for rows.Next() {
		var cota models.Cota
		if err := rows.Scan(&cota.ID, &cota.Codigo, &cota.Categoria, &cota.ValorCredito, &cota.Entrada,
			&cota.Saldo, &cota.Parcelas, &cota.ValorParcela, &cota.Vencimento, &cota.Reserva,
			&cota.AdministradoraID); err != nil {
			return nil, err
		}
		cotas = append(cotas, cota)
	}
	return cotas, rows.Err()
}
