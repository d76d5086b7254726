// Package app assembles the logger, database and scoring pipeline shared by
// the server and seed binaries.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"pcosrisk/internal/config"
	"pcosrisk/internal/db"
	"pcosrisk/internal/predictor"
	"pcosrisk/internal/service"
)

// NewLogger returns a JSON logger on stdout, or a console logger in development.
func NewLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout)
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return logger.Level(level).With().Timestamp().Logger()
}

// OpenDatabase connects, optionally drops every table (RESET_DB) and migrates.
func OpenDatabase(cfg *config.Config, logger zerolog.Logger) (*gorm.DB, error) {
	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("driver", cfg.DBDriver).Msg("connected to database")

	if cfg.ResetDB {
		logger.Warn().Msg("RESET_DB set, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return nil, err
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		return nil, err
	}
	return gormDB, nil
}

// Pipeline is the loaded encoder and scorer.
type Pipeline struct {
	Encoder *service.FeatureEncoder
	Scorer  *service.RiskScorer
}

// LoadPipeline loads the predictor artifacts. Failures are logged and leave the
// pipeline without a model (or scaler); they never stop the process.
func LoadPipeline(cfg *config.Config, logger zerolog.Logger) Pipeline {
	outcome := predictor.Load(cfg.ModelPath, cfg.ScalerPath, service.FeatureNames)

	if outcome.ModelErr != nil {
		logger.Error().Err(outcome.ModelErr).Str("path", cfg.ModelPath).Msg("model not loaded, scoring disabled")
	} else {
		logger.Info().Str("path", cfg.ModelPath).
			Str("type", outcome.Model.Type).
			Str("kind", outcome.Model.Kind.String()).
			Msg("model loaded")
	}
	if outcome.ScalerErr != nil {
		logger.Warn().Err(outcome.ScalerErr).Str("path", cfg.ScalerPath).Msg("scaler not loaded, using raw features")
	} else if outcome.ScalerLoaded() {
		logger.Info().Str("path", cfg.ScalerPath).Msg("scaler loaded")
	}

	p := Pipeline{
		Encoder: service.NewFeatureEncoder(outcome.Scaler),
		Scorer:  service.NewRiskScorer(outcome.Model),
	}
	logger.Info().Str("pipeline", p.Describe()).Msg("predictor ready")
	return p
}

// Describe is a one-line summary of the pipeline state.
func (p Pipeline) Describe() string {
	return fmt.Sprintf("model_loaded=%t scaler_loaded=%t", p.Scorer.Loaded(), p.Encoder.ScalerLoaded())
}
