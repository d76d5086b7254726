package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pcosrisk/internal/app"
	"pcosrisk/internal/auth"
	"pcosrisk/internal/config"
	apperrors "pcosrisk/internal/errors"
	"pcosrisk/internal/handler"
	"pcosrisk/internal/model"
	"pcosrisk/internal/repository"
	"pcosrisk/internal/service"
)

const fetchTimeout = 30 * time.Second

func main() {
	var fixture, email, password, fullName string

	cmd := &cobra.Command{
		Use:          "pcos-seed",
		Short:        "Create a demo user and record assessments from a fixture",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg)
			return run(cmd.Context(), cfg, logger, fixture, email, password, fullName)
		},
	}
	cmd.Flags().StringVar(&fixture, "fixture", "fixtures/assessments.json", "Path or http(s) URL of a JSON array of clinical inputs")
	cmd.Flags().StringVar(&email, "email", "demo@example.com", "Demo user email")
	cmd.Flags().StringVar(&password, "password", "demo-password", "Demo user password")
	cmd.Flags().StringVar(&fullName, "full-name", "Demo User", "Demo user full name")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, fixture, email, password, fullName string) error {
	logger.Info().Msg("starting seed")

	gormDB, err := app.OpenDatabase(cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	pipeline := app.LoadPipeline(cfg, logger)
	if !pipeline.Scorer.Loaded() {
		return apperrors.ErrModelUnavailable
	}

	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL), nil)
	assessmentService := service.NewAssessmentService(
		pipeline.Encoder,
		pipeline.Scorer,
		repository.NewAssessmentRepository(gormDB),
		logger,
	)

	user, created, err := ensureUser(ctx, authService, userRepo, email, password, fullName)
	if err != nil {
		return err
	}
	logger.Info().Uint("user_id", user.ID).Str("email", user.Email).Bool("created", created).Msg("demo user ready")

	logger.Info().Str("fixture", fixture).Msg("loading fixture")
	inputs, err := loadFixture(ctx, fixture)
	if err != nil {
		return err
	}

	recorded := 0
	for i, in := range inputs {
		result, err := assessmentService.Assess(ctx, user.ID, in)
		if err != nil {
			return fmt.Errorf("record fixture item %d: %w", i, err)
		}
		logger.Info().
			Int("item", i).
			Uint("assessment_id", result.ID).
			Str("risk_level", string(result.RiskLevel)).
			Msg("assessment seeded")
		recorded++
	}

	logger.Info().Int("recorded", recorded).Msg("seed completed")
	return nil
}

// ensureUser registers the demo user, or returns the existing one.
func ensureUser(
	ctx context.Context,
	authService service.AuthService,
	userRepo repository.UserRepository,
	email, password, fullName string,
) (*model.User, bool, error) {
	var name *string
	if fullName != "" {
		name = &fullName
	}

	user, err := authService.Register(ctx, email, password, name)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, apperrors.ErrDuplicateIdentity) {
		return nil, false, fmt.Errorf("register demo user: %w", err)
	}

	user, err = userRepo.FindByEmail(ctx, service.NormalizeEmail(email))
	if err != nil {
		return nil, false, fmt.Errorf("find demo user: %w", err)
	}
	return user, false, nil
}

// loadFixture reads a JSON array of clinical inputs from a file or URL. Every
// item must carry all fields.
func loadFixture(ctx context.Context, source string) ([]model.ClinicalInput, error) {
	raw, err := readSource(ctx, source)
	if err != nil {
		return nil, err
	}

	var items []handler.AssessmentRequest
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	validate := validator.New()
	inputs := make([]model.ClinicalInput, 0, len(items))
	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			return nil, fmt.Errorf("fixture item %d: %w", i, err)
		}
		inputs = append(inputs, items[i].ToClinicalInput())
	}
	return inputs, nil
}

func readSource(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		raw, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
		return raw, nil
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixture: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fixture source returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
