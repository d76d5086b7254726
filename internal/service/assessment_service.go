package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	apperrors "pcosrisk/internal/errors"
	"pcosrisk/internal/model"
	"pcosrisk/internal/repository"
)

const (
	// DefaultHistoryLimit is used when a history request does not set a limit.
	DefaultHistoryLimit = 10
	// MaxHistoryLimit caps a single history page.
	MaxHistoryLimit = 100
)

// AssessmentResult is an assessment as returned to callers.
type AssessmentResult struct {
	ID                uint              `json:"id"`
	RiskScore         float64           `json:"risk_score"`
	RiskLevel         model.RiskLevel   `json:"risk_level"`
	Confidence        float64           `json:"confidence"`
	Recommendations   []string          `json:"recommendations"`
	FeatureImportance FeatureImportance `json:"feature_importance"`
	CreatedAt         time.Time         `json:"created_at"`
}

// Evaluation is the unpersisted outcome of running the pipeline on one input.
type Evaluation struct {
	Result          *ScoredResult
	Recommendations []string
}

// AssessmentService scores clinical inputs and keeps each user's assessment ledger.
type AssessmentService interface {
	Evaluate(in model.ClinicalInput) (*Evaluation, error)
	Assess(ctx context.Context, userID uint, in model.ClinicalInput) (*AssessmentResult, error)
	Record(ctx context.Context, userID uint, in model.ClinicalInput, eval *Evaluation) (*AssessmentResult, error)
	History(ctx context.Context, userID uint, offset, limit int) ([]AssessmentResult, int64, error)
	ModelLoaded() bool
	ScalerLoaded() bool
}

type assessmentService struct {
	encoder *FeatureEncoder
	scorer  *RiskScorer
	repo    repository.AssessmentRepository
	logger  zerolog.Logger
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(
	encoder *FeatureEncoder,
	scorer *RiskScorer,
	repo repository.AssessmentRepository,
	logger zerolog.Logger,
) AssessmentService {
	return &assessmentService{
		encoder: encoder,
		scorer:  scorer,
		repo:    repo,
		logger:  logger,
	}
}

func (s *assessmentService) ModelLoaded() bool  { return s.scorer.Loaded() }
func (s *assessmentService) ScalerLoaded() bool { return s.encoder.ScalerLoaded() }

// Evaluate encodes, scores and derives recommendations without persisting.
func (s *assessmentService) Evaluate(in model.ClinicalInput) (*Evaluation, error) {
	if !s.scorer.Loaded() {
		return nil, apperrors.ErrModelUnavailable
	}

	x, err := s.encoder.Encode(in)
	if err != nil {
		return nil, apperrors.NewScoringError(fmt.Errorf("encode input: %w", err))
	}

	result, err := s.scorer.Score(x)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		Result:          result,
		Recommendations: Recommend(result.RiskScore, in),
	}, nil
}

// Assess runs the pipeline on in and records the outcome for userID.
func (s *assessmentService) Assess(ctx context.Context, userID uint, in model.ClinicalInput) (*AssessmentResult, error) {
	eval, err := s.Evaluate(in)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("assessment failed")
		return nil, err
	}
	return s.Record(ctx, userID, in, eval)
}

// Record persists an evaluation. The importance ranking is returned to the
// caller but not stored.
func (s *assessmentService) Record(ctx context.Context, userID uint, in model.ClinicalInput, eval *Evaluation) (*AssessmentResult, error) {
	recs := eval.Recommendations
	if recs == nil {
		recs = []string{}
	}

	assessment := &model.Assessment{
		UserID:          userID,
		Input:           datatypes.NewJSONType(in),
		RiskScore:       eval.Result.RiskScore,
		RiskLevel:       eval.Result.RiskLevel,
		Confidence:      eval.Result.Confidence,
		Recommendations: datatypes.JSONSlice[string](recs),
	}
	if err := s.repo.Create(ctx, assessment); err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("store assessment")
		return nil, fmt.Errorf("create assessment: %w", err)
	}

	s.logger.Info().
		Uint("assessment_id", assessment.ID).
		Uint("user_id", userID).
		Float64("risk_score", assessment.RiskScore).
		Str("risk_level", string(assessment.RiskLevel)).
		Msg("assessment recorded")

	out := toResult(assessment)
	out.FeatureImportance = eval.Result.FeatureImportance
	return &out, nil
}

// History returns a page of userID's assessments, oldest first, and the total count.
func (s *assessmentService) History(ctx context.Context, userID uint, offset, limit int) ([]AssessmentResult, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	rows, err := s.repo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list assessments: %w", err)
	}
	total, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count assessments: %w", err)
	}

	results := make([]AssessmentResult, 0, len(rows))
	for i := range rows {
		results = append(results, toResult(&rows[i]))
	}
	return results, total, nil
}

func toResult(a *model.Assessment) AssessmentResult {
	recs := []string(a.Recommendations)
	if recs == nil {
		recs = []string{}
	}
	return AssessmentResult{
		ID:                a.ID,
		RiskScore:         a.RiskScore,
		RiskLevel:         a.RiskLevel,
		Confidence:        a.Confidence,
		Recommendations:   recs,
		FeatureImportance: FeatureImportance{},
		CreatedAt:         a.CreatedAt,
	}
}
