package predictor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFeatures = []string{"a", "b", "c"}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadModel_LogisticYAML(t *testing.T) {
	path := writeFile(t, "model.yaml", `
type: logistic_regression
features: [a, b, c]
coefficients: [1, 0, 0]
intercept: 0
feature_importances: [0.5, 0.3, 0.2]
`)
	m, err := LoadModel(path, testFeatures)
	require.NoError(t, err)
	assert.Equal(t, ProbabilisticClassifier, m.Kind)

	c, ok := m.Classifier()
	require.True(t, ok)
	proba, err := c.PredictProba([]float64{0, 5, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, proba[1], 1e-9)
	assert.InDelta(t, 1.0, proba[0]+proba[1], 1e-9)

	imp, ok := m.Importances()
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, 0.3, 0.2}, imp)

	_, ok = m.Regressor()
	assert.False(t, ok)
}

func TestLoadModel_LinearJSON(t *testing.T) {
	path := writeFile(t, "model.json", `{"type": "linear_regression", "coefficients": [0.1, 0.2, 0.3], "intercept": 0.05}`)
	m, err := LoadModel(path, testFeatures)
	require.NoError(t, err)
	assert.Equal(t, PointPredictor, m.Kind)

	r, ok := m.Regressor()
	require.True(t, ok)
	got, err := r.Predict([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.65, got, 1e-9)

	_, ok = m.Importances()
	assert.False(t, ok, "model without importances is opaque")
}

func TestLoadModel_RandomForest(t *testing.T) {
	path := writeFile(t, "forest.yaml", `
type: random_forest
trees:
  - nodes:
      - {feature: 0, threshold: 10, left: 1, right: 2}
      - {left: -1, right: -1, value: [9, 1]}
      - {left: -1, right: -1, value: [1, 3]}
  - nodes:
      - {left: -1, right: -1, value: [0.5, 0.5]}
`)
	m, err := LoadModel(path, testFeatures)
	require.NoError(t, err)

	c, _ := m.Classifier()
	low, err := c.PredictProba([]float64{5, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, (0.1+0.5)/2, low[1], 1e-9)

	high, err := c.PredictProba([]float64{50, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, (0.75+0.5)/2, high[1], 1e-9)
}

func TestLoadModel_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown type", `type: svm`, "unsupported model type"},
		{"missing type", `coefficients: [1, 2, 3]`, "missing model type"},
		{"short coefficients", `{type: logistic_regression, coefficients: [1]}`, "coefficients has 1 entries"},
		{"feature order", `{type: linear_regression, features: [b, a, c], coefficients: [1, 2, 3]}`, `feature 0 is "b"`},
		{"importances width", `{type: linear_regression, coefficients: [1, 2, 3], feature_importances: [1]}`, "feature_importances has 1 entries"},
		{"unknown field", `{type: linear_regression, coefficients: [1, 2, 3], bias: 2}`, "bias"},
		{"backwards child", `
type: random_forest
trees:
  - nodes:
      - {feature: 0, threshold: 1, left: 0, right: 1}
      - {left: -1, right: -1, value: [1, 1]}
`, "invalid children"},
		{"empty", ``, "empty artifact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "model.yaml", tt.content)
			_, err := LoadModel(path, testFeatures)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScaler(t *testing.T) {
	path := writeFile(t, "scaler.yaml", `
type: standard
mean: [1, 2, 3]
scale: [2, 0, 1]
`)
	s, err := LoadScaler(path, 3)
	require.NoError(t, err)

	got, err := s.Transform([]float64{3, 4, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 0}, got)

	_, err = s.Transform([]float64{1})
	assert.Error(t, err)

	path = writeFile(t, "minmax.json", `{"type": "minmax", "min": [0, -1, 0], "scale": [0.5, 1, 2]}`)
	s, err = LoadScaler(path, 3)
	require.NoError(t, err)
	got, err = s.Transform([]float64{2, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 2}, got)
}

func TestLoad_Outcome(t *testing.T) {
	modelPath := writeFile(t, "model.yaml", `{type: logistic_regression, coefficients: [0, 0, 0]}`)

	out := Load(modelPath, "", testFeatures)
	assert.True(t, out.ModelLoaded())
	assert.False(t, out.ScalerLoaded())
	assert.NoError(t, out.ScalerErr)

	out = Load(modelPath, filepath.Join(t.TempDir(), "missing.yaml"), testFeatures)
	assert.True(t, out.ModelLoaded())
	assert.False(t, out.ScalerLoaded())
	assert.True(t, errors.Is(out.ScalerErr, fs.ErrNotExist))

	out = Load(filepath.Join(t.TempDir(), "missing.yaml"), "", testFeatures)
	assert.False(t, out.ModelLoaded())
	assert.True(t, errors.Is(out.ModelErr, fs.ErrNotExist))
}
