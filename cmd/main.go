package main

import (
	"log/slog"
	"os"

	"github.com/tmc/langchaingo/llms/openai"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/config"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/controllers"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/routes"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/services"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}

	logs := storage.NewLogStore(cfg.DataDir, logger)
	users := storage.NewUserStore(cfg.DataDir)
	goals := storage.NewGoalStore(cfg.DataDir)

	catalog := services.NewCatalogService(cfg.DatasetPath,
		services.CatalogOptions{ExcludeJunkFood: cfg.ExcludeJunkFood}, logger)
	// A missing dataset disables catalog-backed features but nothing else.
	if err := catalog.Build(); err != nil {
		logger.Warn("catalog unavailable", "error", err)
	}
	if cfg.WatchDataset {
		if err := catalog.Watch(); err != nil {
			logger.Warn("dataset watcher disabled", "error", err)
		}
	}

	llm, err := openai.New(
		openai.WithBaseURL(cfg.OpenAIBaseURL),
		openai.WithToken(cfg.OpenAIAPIKey),
		openai.WithModel(cfg.OpenAIModel),
	)
	if err != nil {
		logger.Error("creating suggestion client", "error", err)
		os.Exit(1)
	}

	authSvc := services.NewAuthService(users, logs, cfg.JWTSecret)
	if err := authSvc.EnsureDemoUser(); err != nil {
		logger.Error("seeding demo user", "error", err)
		os.Exit(1)
	}

	ctl := routes.Controllers{
		Auth:            controllers.NewAuthController(authSvc),
		Meals:           controllers.NewMealController(services.NewMealService(logs, catalog)),
		Catalog:         controllers.NewCatalogController(catalog),
		Recommendations: controllers.NewRecommendationController(services.NewRecommendationService(catalog)),
		Goals:           controllers.NewGoalController(services.NewGoalService(goals, logs)),
		Analytics:       controllers.NewAnalyticsController(services.NewAnalyticsService(logs)),
		Suggestions:     controllers.NewSuggestionController(services.NewSuggestionService(llm, catalog)),
	}

	r := routes.SetupRouter(cfg.JWTSecret, ctl)
	logger.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
