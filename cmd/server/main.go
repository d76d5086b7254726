package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	_ "pcosrisk/docs" // swagger docs

	"pcosrisk/internal/app"
	"pcosrisk/internal/auth"
	"pcosrisk/internal/cache"
	"pcosrisk/internal/config"
	"pcosrisk/internal/db"
	"pcosrisk/internal/handler"
	"pcosrisk/internal/repository"
	"pcosrisk/internal/router"
	"pcosrisk/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title PCOS Prediction API with Authentication
// @version 1.0
// @description Scores PCOS risk from clinical inputs and keeps a per-user assessment history.
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	rootCmd := &cobra.Command{
		Use:          "pcos-server",
		Short:        "PCOS risk assessment API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(scoreCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg)

			gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL, logger)
			if err != nil {
				return err
			}
			if err := db.Migrate(gormDB); err != nil {
				return err
			}
			logger.Info().Str("driver", cfg.DBDriver).Msg("migrations applied")
			return nil
		},
	}
}

type scoreOutput struct {
	RiskScore         float64                   `json:"risk_score"`
	RiskLevel         string                    `json:"risk_level"`
	Confidence        float64                   `json:"confidence"`
	Recommendations   []string                  `json:"recommendations"`
	FeatureImportance service.FeatureImportance `json:"feature_importance"`
}

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a clinical input file offline and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg)
			pipeline := app.LoadPipeline(cfg, logger)

			raw, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			var req handler.AssessmentRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("decode input: %w", err)
			}
			if err := validator.New().Struct(&req); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			// Evaluate never touches the ledger
			svc := service.NewAssessmentService(pipeline.Encoder, pipeline.Scorer, nil, logger)
			eval, err := svc.Evaluate(req.ToClinicalInput())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(scoreOutput{
				RiskScore:         eval.Result.RiskScore,
				RiskLevel:         string(eval.Result.RiskLevel),
				Confidence:        eval.Result.Confidence,
				Recommendations:   eval.Recommendations,
				FeatureImportance: eval.Result.FeatureImportance,
			})
		},
	}
	cmd.Flags().String("input", "", "Path to a JSON clinical input")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runServer(parent context.Context, cfg *config.Config) error {
	logger := app.NewLogger(cfg)

	gormDB, err := app.OpenDatabase(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("database init")
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if cacheClient.Enabled() {
		if err := cacheClient.Ping(parent); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, continuing without cache")
		} else {
			logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
		}
	}

	pipeline := app.LoadPipeline(cfg, logger)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	assessmentRepo := repository.NewAssessmentRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	logger.Info().Dur("access_token_ttl", jwtService.DefaultTTL()).Msg("token issuer ready")
	authService := service.NewAuthService(userRepo, jwtService, cacheClient)
	assessmentService := service.NewAssessmentService(pipeline.Encoder, pipeline.Scorer, assessmentRepo, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(
		e,
		cfg,
		logger,
		jwtService,
		handler.NewAuthHandler(authService),
		handler.NewAssessmentHandler(assessmentService),
		handler.NewHealthHandler(assessmentService),
	)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	addr := ":" + cfg.ServerPort

	g.Go(func() error {
		logger.Info().Str("addr", addr).Str("swagger", "/swagger/index.html").Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server start: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
