// Package predictor loads trained model and scaler artifacts and exposes them
// as read-only handles whose capabilities are fixed at load time.
package predictor

import "fmt"

// OutputKind tells how a model reports its prediction.
type OutputKind uint8

const (
	// ProbabilisticClassifier models return one probability per class.
	ProbabilisticClassifier OutputKind = iota + 1
	// PointPredictor models return a single raw value.
	PointPredictor
)

func (k OutputKind) String() string {
	switch k {
	case ProbabilisticClassifier:
		return "probabilistic_classifier"
	case PointPredictor:
		return "point_predictor"
	default:
		return fmt.Sprintf("OutputKind(%d)", uint8(k))
	}
}

// Classifier returns class probabilities for a feature vector.
type Classifier interface {
	PredictProba(x []float64) ([]float64, error)
}

// Regressor returns a single prediction for a feature vector.
type Regressor interface {
	Predict(x []float64) (float64, error)
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(x []float64) ([]float64, error)

// PredictProba calls f(x).
func (f ClassifierFunc) PredictProba(x []float64) ([]float64, error) { return f(x) }

// RegressorFunc adapts a function to Regressor.
type RegressorFunc func(x []float64) (float64, error)

// Predict calls f(x).
func (f RegressorFunc) Predict(x []float64) (float64, error) { return f(x) }

// Model is a loaded predictor. Exactly one of the classifier or regressor is
// set, according to Kind. Importances are nil for opaque models.
type Model struct {
	Kind OutputKind
	Type string

	classifier  Classifier
	regressor   Regressor
	importances []float64
}

// NewClassifierModel wraps a probabilistic classifier. Pass nil importances
// for a model that does not report them.
func NewClassifierModel(typ string, c Classifier, importances []float64) *Model {
	return &Model{
		Kind:        ProbabilisticClassifier,
		Type:        typ,
		classifier:  c,
		importances: cloneOrNil(importances),
	}
}

// NewRegressorModel wraps a point predictor.
func NewRegressorModel(typ string, r Regressor, importances []float64) *Model {
	return &Model{
		Kind:        PointPredictor,
		Type:        typ,
		regressor:   r,
		importances: cloneOrNil(importances),
	}
}

// Classifier returns the classifier when Kind is ProbabilisticClassifier.
func (m *Model) Classifier() (Classifier, bool) {
	return m.classifier, m.Kind == ProbabilisticClassifier && m.classifier != nil
}

// Regressor returns the regressor when Kind is PointPredictor.
func (m *Model) Regressor() (Regressor, bool) {
	return m.regressor, m.Kind == PointPredictor && m.regressor != nil
}

// Importances returns a copy of the per-feature importances, if reported.
func (m *Model) Importances() ([]float64, bool) {
	if m.importances == nil {
		return nil, false
	}
	return cloneOrNil(m.importances), true
}

func cloneOrNil(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
