package controllers

import (
	"context"

	"cotas/src/repositories"
	"cotas/src/schemas"
)

type CotasControllerI interface {
	FilterCotas(ctx context.Context, filter schemas.CotaFilter) ([]schemas.CotaWithAdmin, error)
	FeaturedCotas(ctx context.Context) ([]schemas.CotaWithAdmin, error)
	DetalhesCota(ctx context.Context, id int) (*schemas.DetalhesCotaResponse, error)
	SomarCotas(ctx context.Context, ids []int) (*schemas.SomarCotasResponse, error)
	IniciarNegociacao(ctx context.Context, ids []int, tipoContato string) (*schemas.IniciarNegociacaoResponse, error)
	BackendAlive(ctx context.Context) bool
	CacheSize() int
}

type CotasController struct {
	Cotas  repositories.CotaRepository
	Admins repositories.AdministradoraRepository
	Cache  ListingCache
}

func NewCotasController(cotas repositories.CotaRepository, admins repositories.AdministradoraRepository, cache ListingCache) *CotasController {
	return &CotasController{Cotas: cotas, Admins: admins, Cache: cache}
}

func (c *CotasController) BackendAlive(ctx context.Context) bool {
	return c.Cotas.Ping(ctx) == nil
}

func (c *CotasController) CacheSize() int {
	return c.Cache.Len()
}
