//POST /user/register      # Register (public)
//POST /user/login         # Login (public)
//GET  /api/words          # Ranked review + study set (auth)
//GET  /api/words/all      # Full catalog with learning state (auth)
//POST /api/words/status   # Record a recall outcome (auth)
//PATCH /api/words/{wid}   # Edit note/level (auth)

package api

import (
	healthAPI "wordmem/internal/app/server/api/http/health"
	"wordmem/internal/app/server/api/http/middleware"
	"wordmem/internal/app/server/api/http/middleware/auth"
	"wordmem/internal/app/server/api/http/middleware/logger"
	reviewAPI "wordmem/internal/app/server/api/http/review"
	userAPI "wordmem/internal/app/server/api/http/user"
	"wordmem/internal/app/server/config"
	"wordmem/internal/domain/session"
	"wordmem/internal/domain/study"
	"wordmem/internal/domain/user"
	"wordmem/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Review *reviewAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.Register.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Wordmem API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Review.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage.Pool(), log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewCredentialValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	studyRepo := postgres.NewStudyRepository(storage.Pool(), log)
	studyService := study.NewService(studyRepo, cfg.Study.NewPerBatch, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	reviewHandler := reviewAPI.NewHandler(studyService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Review: reviewHandler,
	}
}
