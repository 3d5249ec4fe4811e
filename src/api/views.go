package api

import (
	"net/http"
	"time"

	"cotas/src/api/controllers"
	"cotas/src/api/handlers"
	"cotas/src/config"
	"cotas/src/database"
	"cotas/src/repositories"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Logger  *logrus.Logger
}

// NewServer wires the data access layer, cache, controller and routes. A
// failed database connection is logged and tolerated: the process keeps
// serving and the data endpoints surface the condition per request, like the
// hosted-backend deployment this replaces.
func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	pool, err := database.SetupDB(cfg)
	if err != nil {
		logger.Errorf("could not connect to the cotas database: %v", err)
		pool = nil
	}

	cache, err := controllers.NewListingCache(cfg)
	if err != nil {
		return nil, err
	}

	controller := controllers.NewCotasController(
		repositories.NewCotaRepository(pool),
		repositories.NewAdministradoraRepository(pool),
		cache,
	)

	handler, err := handlers.NewHandler(controller, logger, "./templates/index.html")
	if err != nil {
		return nil, err
	}

	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
		Logger:  logger,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(middleware.Compress(5))
	s.Router.Use(requestLogger(s.Logger))

	s.Router.Get("/", s.Handler.Index)
	s.Router.Get("/health", s.Handler.Healthcheck)

	s.Router.Route("/api", func(r chi.Router) {
		r.Post("/cotas", s.Handler.FilterCotas)
		r.Get("/detalhes_cota/{id}", s.Handler.DetalhesCota)
		r.Post("/somar_cotas", s.Handler.SomarCotas)
		r.Post("/iniciar_negociacao", s.Handler.IniciarNegociacao)
	})
}

// requestLogger logs one structured line per request.
func requestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"duration":   time.Since(start).String(),
				"request_id": middleware.GetReqID(r.Context()),
			}).Info("request handled")
		})
	}
}

func NewHTTPServer(cfg *config.Config, server *Server) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
