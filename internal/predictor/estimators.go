package predictor

import (
	"fmt"
	"math"
)

// LogisticRegression is a binary logistic model.
type LogisticRegression struct {
	Coefficients []float64
	Intercept    float64
}

// PredictProba returns [P(0), P(1)].
func (m *LogisticRegression) PredictProba(x []float64) ([]float64, error) {
	z, err := linear(m.Coefficients, m.Intercept, x)
	if err != nil {
		return nil, err
	}
	p := 1 / (1 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}

// LinearRegression predicts intercept + coefficients . x.
type LinearRegression struct {
	Coefficients []float64
	Intercept    float64
}

// Predict returns the raw linear prediction.
func (m *LinearRegression) Predict(x []float64) (float64, error) {
	return linear(m.Coefficients, m.Intercept, x)
}

func linear(coef []float64, intercept float64, x []float64) (float64, error) {
	if len(x) != len(coef) {
		return 0, fmt.Errorf("vector has %d features, model expects %d", len(x), len(coef))
	}
	z := intercept
	for i, c := range coef {
		z += c * x[i]
	}
	return z, nil
}

// TreeNode is one node of a flattened decision tree. Leaves have Left < 0.
// A sample goes left when x[Feature] <= Threshold.
type TreeNode struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     []float64
}

// DecisionTree is a flattened binary tree rooted at node 0.
type DecisionTree struct {
	Nodes []TreeNode
}

func (t *DecisionTree) leaf(x []float64) ([]float64, error) {
	i := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Nodes[i]
		if n.Left < 0 {
			return n.Value, nil
		}
		if n.Feature >= len(x) {
			return nil, fmt.Errorf("node %d splits on feature %d, vector has %d", i, n.Feature, len(x))
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return nil, fmt.Errorf("tree walk did not reach a leaf")
}

// RandomForest averages the normalised leaf class distributions of its trees.
type RandomForest struct {
	Trees    []DecisionTree
	Classes  int
	Features int
}

// PredictProba returns the mean class distribution across trees.
func (f *RandomForest) PredictProba(x []float64) ([]float64, error) {
	if len(x) != f.Features {
		return nil, fmt.Errorf("vector has %d features, model expects %d", len(x), f.Features)
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("forest has no trees")
	}
	proba := make([]float64, f.Classes)
	for ti := range f.Trees {
		value, err := f.Trees[ti].leaf(x)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", ti, err)
		}
		var sum float64
		for _, v := range value {
			sum += v
		}
		if sum <= 0 {
			return nil, fmt.Errorf("tree %d: empty leaf distribution", ti)
		}
		for c := range proba {
			proba[c] += value[c] / sum
		}
	}
	for c := range proba {
		proba[c] /= float64(len(f.Trees))
	}
	return proba, nil
}
