package predictor

import "fmt"

// Transformer rescales an encoded feature vector element-wise.
type Transformer interface {
	Transform(x []float64) ([]float64, error)
}

// StandardScaler computes (x - mean) / scale. A zero scale leaves the centred value unscaled.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// Transform returns a new scaled vector.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("vector has %d features, scaler expects %d", len(x), len(s.Mean))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}

// MinMaxScaler computes x * scale + min.
type MinMaxScaler struct {
	Min   []float64
	Scale []float64
}

// Transform returns a new scaled vector.
func (s *MinMaxScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Min) {
		return nil, fmt.Errorf("vector has %d features, scaler expects %d", len(x), len(s.Min))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v*s.Scale[i] + s.Min[i]
	}
	return out, nil
}
