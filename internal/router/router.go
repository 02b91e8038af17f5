package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "med-reminder/docs" // registro del spec swagger generado

	mem "med-reminder/internal/adapters/storage/memory"
	pg "med-reminder/internal/adapters/storage/postgres"
	"med-reminder/internal/domain/doses"
	"med-reminder/internal/domain/schedules"
	"med-reminder/internal/middleware"
	"med-reminder/internal/platform/logger"
	"med-reminder/internal/ports/auth"
	"med-reminder/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: capability resolver para feature gating (nil => todo permitido).
	Capabilities capabilities.Resolver

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: logger para el access log (nil => sin access log).
	Log logger.Logger
}

// Services expone los services armados por NewRouter, para que main pueda
// colgarles más infraestructura (ej: el poller de alertas).
type Services struct {
	Schedules *schedules.Service
	Doses     *doses.Service
}

func NewRouter(opts Options) (http.Handler, Services) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Log != nil {
		r.Use(middleware.RequestLog(opts.Log))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		schedulesRepo schedules.Repository
		dosesRepo     doses.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		schedulesRepo = pg.NewSchedulesRepo(db)
		dosesRepo = pg.NewDosesRepo(db)
	} else {
		schedulesRepo = mem.NewSchedulesRepo()
		dosesRepo = mem.NewDosesRepo()
	}

	// Services por módulo
	schedulesSvc := schedules.NewService(schedulesRepo)
	dosesSvc := doses.NewService(dosesRepo)

	// Rutas por módulo
	schedules.RegisterRoutes(r, schedulesSvc, dosesSvc, opts.Capabilities)
	doses.RegisterRoutes(r, dosesSvc, schedulesSvc.OwnerOf)

	return r, Services{
		Schedules: schedulesSvc,
		Doses:     dosesSvc,
	}
}
