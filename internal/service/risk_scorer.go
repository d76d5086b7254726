package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	apperrors "pcosrisk/internal/errors"
	"pcosrisk/internal/model"
	"pcosrisk/internal/predictor"
)

const (
	// DefaultConfidence is reported for models without class probabilities.
	DefaultConfidence = 0.8
	// TopFeatures bounds the importance mapping returned with a score.
	TopFeatures = 5

	highRiskThreshold     = 0.7
	moderateRiskThreshold = 0.4
)

// FeatureWeight is one entry of a feature importance ranking.
type FeatureWeight struct {
	Name   string
	Weight float64
}

// FeatureImportance is a ranking ordered by descending weight. It encodes as
// a JSON object whose keys keep that order.
type FeatureImportance []FeatureWeight

// MarshalJSON writes {"name": weight, ...} in ranking order.
func (f FeatureImportance) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fw := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fw.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(fw.Weight)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ScoredResult is the transient outcome of scoring one vector.
type ScoredResult struct {
	RiskScore         float64
	RiskLevel         model.RiskLevel
	Confidence        float64
	FeatureImportance FeatureImportance
}

// RiskLevelFor maps a score to its tier. Each tier includes its lower bound.
func RiskLevelFor(score float64) model.RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return model.RiskLevelHigh
	case score >= moderateRiskThreshold:
		return model.RiskLevelModerate
	default:
		return model.RiskLevelLow
	}
}

// RiskScorer runs the loaded model. The model handle is set once at
// construction and never replaced.
type RiskScorer struct {
	model *predictor.Model
}

// NewRiskScorer creates a scorer. A nil model makes every Score call fail
// with ErrModelUnavailable.
func NewRiskScorer(m *predictor.Model) *RiskScorer {
	return &RiskScorer{model: m}
}

// Loaded reports whether a model is available.
func (s *RiskScorer) Loaded() bool {
	return s.model != nil
}

// Score runs the model on an encoded vector.
func (s *RiskScorer) Score(x []float64) (result *ScoredResult, err error) {
	if !s.Loaded() {
		return nil, apperrors.ErrModelUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = apperrors.NewScoringError(fmt.Errorf("model panic: %v", r))
		}
	}()

	var score, confidence float64
	switch s.model.Kind {
	case predictor.ProbabilisticClassifier:
		c, _ := s.model.Classifier()
		proba, err := c.PredictProba(x)
		if err != nil {
			return nil, apperrors.NewScoringError(err)
		}
		if len(proba) < 2 {
			return nil, apperrors.NewScoringError(fmt.Errorf("model returned %d class probabilities", len(proba)))
		}
		score = proba[1]
		confidence = maxOf(proba)
	case predictor.PointPredictor:
		r, _ := s.model.Regressor()
		value, err := r.Predict(x)
		if err != nil {
			return nil, apperrors.NewScoringError(err)
		}
		score = value
		confidence = DefaultConfidence
	default:
		return nil, apperrors.NewScoringError(fmt.Errorf("unsupported model kind %s", s.model.Kind))
	}

	return &ScoredResult{
		RiskScore:         score,
		RiskLevel:         RiskLevelFor(score),
		Confidence:        confidence,
		FeatureImportance: s.topFeatures(),
	}, nil
}

// topFeatures ranks the model's importances against FeatureNames. Opaque
// models yield an empty ranking.
func (s *RiskScorer) topFeatures() FeatureImportance {
	importances, ok := s.model.Importances()
	if !ok {
		return FeatureImportance{}
	}
	ranking := make(FeatureImportance, 0, len(FeatureNames))
	for i, name := range FeatureNames {
		if i >= len(importances) {
			break
		}
		ranking = append(ranking, FeatureWeight{Name: name, Weight: importances[i]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Weight > ranking[j].Weight
	})
	if len(ranking) > TopFeatures {
		ranking = ranking[:TopFeatures]
	}
	return ranking
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
