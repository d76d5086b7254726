package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcosrisk/internal/model"
	"pcosrisk/internal/predictor"
)

func sampleInput() model.ClinicalInput {
	return model.ClinicalInput{
		Age:            28,
		Weight:         68,
		Height:         160,
		BMI:            26.6,
		BloodGroup:     "O+",
		PulseRate:      72,
		RR:             18,
		Hb:             11.5,
		Cycle:          "Irregular",
		CycleLength:    5,
		MarriageStatus: "Married",
		Pregnant:       "No",
		NoOfAbortions:  0,
		IBetaHCG1:      1.99,
		IBetaHCG2:      1.99,
		FSH:            6.2,
		LH:             2.1,
		FSHLH:          2.95,
		Hip:            38,
		Waist:          33,
		WaistHipRatio:  0.87,
		TSH:            2.4,
		AMH:            6.1,
		PRL:            20.5,
		VitD3:          22,
		PRG:            0.6,
		RBS:            95,
		WeightGain:     "Yes",
		HairGrowth:     "Yes",
		SkinDarkening:  "No",
		HairLoss:       "No",
		Pimples:        "Yes",
		FastFood:       "Yes",
		RegExercise:    "No",
		BPSystolic:     120,
		BPDiastolic:    80,
		FollicleNoL:    9,
		FollicleNoR:    11,
		AvgFSizeL:      15,
		AvgFSizeR:      16,
		Endometrium:    8.5,
	}
}

func TestEncodeRaw_Order(t *testing.T) {
	x := EncodeRaw(sampleInput())

	require.Len(t, x, len(FeatureNames))
	assert.Len(t, FeatureNames, 41)

	index := make(map[string]int, len(FeatureNames))
	for i, name := range FeatureNames {
		index[name] = i
	}

	assert.Equal(t, 28.0, x[index["age"]])
	assert.Equal(t, 26.6, x[index["bmi"]])
	assert.Equal(t, 6.0, x[index["blood_group"]])
	assert.Equal(t, 1.0, x[index["cycle"]])
	assert.Equal(t, 1.0, x[index["marriage_status"]])
	assert.Equal(t, 0.0, x[index["pregnant"]])
	assert.Equal(t, 2.95, x[index["fsh_lh"]])
	assert.Equal(t, 1.0, x[index["fast_food"]])
	assert.Equal(t, 0.0, x[index["reg_exercise"]])
	assert.Equal(t, 8.5, x[index["endometrium"]])
}

func TestEncodeRaw_UnknownCategoriesAreZero(t *testing.T) {
	in := sampleInput()
	in.BloodGroup = "Z+"
	in.Cycle = "sometimes"
	in.MarriageStatus = ""
	in.FastFood = "yes"

	x := EncodeRaw(in)

	assert.Equal(t, 0.0, x[4])
	assert.Equal(t, 0.0, x[8])
	assert.Equal(t, 0.0, x[10])
	assert.Equal(t, 0.0, x[32])
}

func TestEncodeRaw_Deterministic(t *testing.T) {
	in := sampleInput()
	assert.Equal(t, EncodeRaw(in), EncodeRaw(in))
}

func TestFeatureEncoder_Scaler(t *testing.T) {
	n := len(FeatureNames)
	mean := make([]float64, n)
	scale := make([]float64, n)
	for i := range scale {
		scale[i] = 2
	}
	mean[0] = 20

	encoder := NewFeatureEncoder(&predictor.StandardScaler{Mean: mean, Scale: scale})
	assert.True(t, encoder.ScalerLoaded())

	x, err := encoder.Encode(sampleInput())
	require.NoError(t, err)
	assert.Equal(t, 4.0, x[0])
	assert.Equal(t, 13.3, x[3])

	raw, err := NewFeatureEncoder(nil).Encode(sampleInput())
	require.NoError(t, err)
	assert.Equal(t, EncodeRaw(sampleInput()), raw)
}

func TestFeatureEncoder_ScalerWidthMismatch(t *testing.T) {
	encoder := NewFeatureEncoder(&predictor.StandardScaler{Mean: []float64{0}, Scale: []float64{1}})
	_, err := encoder.Encode(sampleInput())
	assert.Error(t, err)
}
