package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/selfcheck/config"
	"github.com/lshigami/selfcheck/database"
	_ "github.com/lshigami/selfcheck/docs" // Swagger docs - auto-generated
	"github.com/lshigami/selfcheck/internal/auth"
	"github.com/lshigami/selfcheck/internal/controller"
	adminctrl "github.com/lshigami/selfcheck/internal/controller/admin"
	authctrl "github.com/lshigami/selfcheck/internal/controller/auth"
	userctrl "github.com/lshigami/selfcheck/internal/controller/user"
	"github.com/lshigami/selfcheck/internal/logger"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/lshigami/selfcheck/internal/router"
	"github.com/lshigami/selfcheck/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gorm.io/gorm"
)

// @title Selfcheck Assessment API
// @version 1.0
// @description Psychological self-assessment questionnaires: submit answers, get a scored and classified result with recommendations.
// @description Results are a screening aid, not a diagnosis.
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger { return logger.FxLogger{} }),

		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			router.NewGinEngine,
			auth.NewTokenManager,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewTestResultRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScoreConverterService,
			service.NewNarrativeService,
			service.NewUserTestService,
			service.NewAdminTestService,
			service.NewQuestionService,
			service.NewAuthService,
			service.NewTestSubmissionService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
			authctrl.NewAuthController,
		),

		fx.Invoke(ApplyLogLevel),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	// Wait for a shutdown signal
	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func ApplyLogLevel(cfg *config.Config) {
	logger.SetLevel(cfg.LogLevel)
}

func AutoMigrateDB(db *gorm.DB) error {
	return database.AutoMigrate(db)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	tokens *auth.TokenManager,
	adminTestCtrl *adminctrl.AdminTestController,
	userTestCtrl *userctrl.UserTestController,
	authCtrl *authctrl.AuthController,
) error {
	if err := controller.RegisterValidators(); err != nil {
		return err
	}
	router.RegisterRoutes(engine, tokens, adminTestCtrl, userTestCtrl, authCtrl)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Selfcheck API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
	return nil
}
