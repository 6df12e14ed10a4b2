package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "yardura-service/internal/adapters/storage/memory"
	pg "yardura-service/internal/adapters/storage/postgres"
	"yardura-service/internal/domain/dogs"
	"yardura-service/internal/domain/leads"
	"yardura-service/internal/domain/pricing"
	"yardura-service/internal/domain/quotes"
	"yardura-service/internal/domain/readings"
	"yardura-service/internal/domain/wellness"
	"yardura-service/internal/middleware"
	"yardura-service/internal/platform/logger"
	"yardura-service/internal/ports/auth"

	_ "yardura-service/docs" // registro del spec generado por swag

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: logger de la app. Si no viene, se arma desde env.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		dogRepo     dogs.Repository
		readingRepo readings.Repository
		quoteRepo   quotes.Repository
		leadRepo    leads.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to in-memory repos", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}

	if db != nil {
		dogRepo = pg.NewDogsRepo(db)
		readingRepo = pg.NewReadingsRepo(db)
		quoteRepo = pg.NewQuotesRepo(db)
		leadRepo = pg.NewLeadsRepo(db)
	} else {
		dogRepo = mem.NewDogRepo()
		readingRepo = mem.NewReadingRepo()
		quoteRepo = mem.NewQuoteRepo()
		leadRepo = mem.NewLeadRepo()
	}

	// Services por módulo
	dogsSvc := dogs.NewService(dogRepo)
	readingsSvc := readings.NewService(readingRepo)
	quotesSvc := quotes.NewService(quoteRepo)
	leadsSvc := leads.NewService(leadRepo)

	// Rutas por módulo
	pricing.RegisterRoutes(r)
	quotes.RegisterRoutes(r, quotesSvc)
	leads.RegisterRoutes(r, leadsSvc)
	dogs.RegisterRoutes(r, dogsSvc)
	readings.RegisterRoutes(r, readingsSvc, dogsSvc)
	wellness.RegisterRoutes(r, readingsSvc, dogsSvc, log)

	return r
}
