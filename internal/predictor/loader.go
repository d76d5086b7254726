package predictor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Artifact type names accepted in model and scaler files.
const (
	TypeLogisticRegression = "logistic_regression"
	TypeLinearRegression   = "linear_regression"
	TypeRandomForest       = "random_forest"

	ScalerStandard = "standard"
	ScalerMinMax   = "minmax"
)

type modelArtifact struct {
	Type               string         `yaml:"type"`
	Version            string         `yaml:"version"`
	Features           []string       `yaml:"features"`
	Coefficients       []float64      `yaml:"coefficients"`
	Intercept          float64        `yaml:"intercept"`
	Classes            int            `yaml:"classes"`
	Trees              []treeArtifact `yaml:"trees"`
	FeatureImportances []float64      `yaml:"feature_importances"`
}

type treeArtifact struct {
	Nodes []nodeArtifact `yaml:"nodes"`
}

type nodeArtifact struct {
	Feature   int       `yaml:"feature"`
	Threshold float64   `yaml:"threshold"`
	Left      int       `yaml:"left"`
	Right     int       `yaml:"right"`
	Value     []float64 `yaml:"value"`
}

type scalerArtifact struct {
	Type  string    `yaml:"type"`
	Mean  []float64 `yaml:"mean"`
	Min   []float64 `yaml:"min"`
	Scale []float64 `yaml:"scale"`
}

// Outcome is the result of loading the predictor at startup. Load never
// fails the process; callers inspect the errors and log them.
type Outcome struct {
	Model     *Model
	Scaler    Transformer
	ModelErr  error
	ScalerErr error
}

// ModelLoaded reports whether a usable model was loaded.
func (o Outcome) ModelLoaded() bool { return o.Model != nil }

// ScalerLoaded reports whether a scaler was loaded.
func (o Outcome) ScalerLoaded() bool { return o.Scaler != nil }

// Load reads the model and the optional scaler for the given feature order.
// An empty scalerPath means no scaler is configured.
func Load(modelPath, scalerPath string, features []string) Outcome {
	var out Outcome
	out.Model, out.ModelErr = LoadModel(modelPath, features)
	if scalerPath != "" {
		out.Scaler, out.ScalerErr = LoadScaler(scalerPath, len(features))
	}
	return out
}

// LoadModel reads a model artifact (YAML or JSON) from path.
func LoadModel(path string, features []string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var a modelArtifact
	if err := decode(raw, &a); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}
	m, err := a.build(features)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return m, nil
}

// LoadScaler reads a scaler artifact (YAML or JSON) from path.
func LoadScaler(path string, width int) (Transformer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler: %w", err)
	}
	var a scalerArtifact
	if err := decode(raw, &a); err != nil {
		return nil, fmt.Errorf("decode scaler %s: %w", path, err)
	}
	s, err := a.build(width)
	if err != nil {
		return nil, fmt.Errorf("scaler %s: %w", path, err)
	}
	return s, nil
}

func decode(raw []byte, v interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty artifact")
		}
		return err
	}
	return nil
}

func (a *modelArtifact) build(features []string) (*Model, error) {
	n := len(features)
	if len(a.Features) > 0 {
		if len(a.Features) != n {
			return nil, fmt.Errorf("artifact lists %d features, expected %d", len(a.Features), n)
		}
		for i, name := range a.Features {
			if name != features[i] {
				return nil, fmt.Errorf("feature %d is %q, expected %q", i, name, features[i])
			}
		}
	}
	if a.FeatureImportances != nil && len(a.FeatureImportances) != n {
		return nil, fmt.Errorf("feature_importances has %d entries, expected %d", len(a.FeatureImportances), n)
	}

	switch a.Type {
	case TypeLogisticRegression:
		if len(a.Coefficients) != n {
			return nil, fmt.Errorf("coefficients has %d entries, expected %d", len(a.Coefficients), n)
		}
		est := &LogisticRegression{Coefficients: a.Coefficients, Intercept: a.Intercept}
		return NewClassifierModel(a.Type, est, a.FeatureImportances), nil
	case TypeLinearRegression:
		if len(a.Coefficients) != n {
			return nil, fmt.Errorf("coefficients has %d entries, expected %d", len(a.Coefficients), n)
		}
		est := &LinearRegression{Coefficients: a.Coefficients, Intercept: a.Intercept}
		return NewRegressorModel(a.Type, est, a.FeatureImportances), nil
	case TypeRandomForest:
		forest, err := a.forest(n)
		if err != nil {
			return nil, err
		}
		return NewClassifierModel(a.Type, forest, a.FeatureImportances), nil
	case "":
		return nil, errors.New("missing model type")
	default:
		return nil, fmt.Errorf("unsupported model type %q", a.Type)
	}
}

func (a *modelArtifact) forest(n int) (*RandomForest, error) {
	classes := a.Classes
	if classes == 0 {
		classes = 2
	}
	if classes < 2 {
		return nil, fmt.Errorf("classes must be at least 2, got %d", classes)
	}
	if len(a.Trees) == 0 {
		return nil, errors.New("random_forest has no trees")
	}
	f := &RandomForest{Classes: classes, Features: n, Trees: make([]DecisionTree, len(a.Trees))}
	for ti, t := range a.Trees {
		if len(t.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", ti)
		}
		nodes := make([]TreeNode, len(t.Nodes))
		for ni, node := range t.Nodes {
			if node.Left < 0 {
				if len(node.Value) != classes {
					return nil, fmt.Errorf("tree %d node %d: leaf has %d values, expected %d", ti, ni, len(node.Value), classes)
				}
			} else {
				// children always follow their parent, so walks terminate
				if node.Left <= ni || node.Right <= ni || node.Left >= len(t.Nodes) || node.Right >= len(t.Nodes) {
					return nil, fmt.Errorf("tree %d node %d: invalid children %d/%d", ti, ni, node.Left, node.Right)
				}
				if node.Feature < 0 || node.Feature >= n {
					return nil, fmt.Errorf("tree %d node %d: feature %d out of range", ti, ni, node.Feature)
				}
			}
			nodes[ni] = TreeNode(node)
		}
		f.Trees[ti] = DecisionTree{Nodes: nodes}
	}
	return f, nil
}

func (a *scalerArtifact) build(width int) (Transformer, error) {
	if len(a.Scale) != width {
		return nil, fmt.Errorf("scale has %d entries, expected %d", len(a.Scale), width)
	}
	switch a.Type {
	case ScalerStandard, "":
		if len(a.Mean) != width {
			return nil, fmt.Errorf("mean has %d entries, expected %d", len(a.Mean), width)
		}
		return &StandardScaler{Mean: a.Mean, Scale: a.Scale}, nil
	case ScalerMinMax:
		if len(a.Min) != width {
			return nil, fmt.Errorf("min has %d entries, expected %d", len(a.Min), width)
		}
		return &MinMaxScaler{Min: a.Min, Scale: a.Scale}, nil
	default:
		return nil, fmt.Errorf("unsupported scaler type %q", a.Type)
	}
}
