package service

import (
	"pcosrisk/internal/model"
	"pcosrisk/internal/predictor"
)

// FeatureNames is the column order the risk model was trained on.
var FeatureNames = []string{
	"age", "weight", "height", "bmi", "blood_group", "pulse_rate",
	"rr", "hb", "cycle", "cycle_length", "marriage_status", "pregnant",
	"no_of_abortions", "i_beta_hcg_1", "i_beta_hcg_2", "fsh", "lh",
	"fsh_lh", "hip", "waist", "waist_hip_ratio", "tsh", "amh", "prl",
	"vit_d3", "prg", "rbs", "weight_gain", "hair_growth", "skin_darkening",
	"hair_loss", "pimples", "fast_food", "reg_exercise", "bp_systolic",
	"bp_diastolic", "follicle_no_l", "follicle_no_r", "avg_f_size_l",
	"avg_f_size_r", "endometrium",
}

var (
	bloodGroups = map[string]float64{
		"A+": 0, "A-": 1, "B+": 2, "B-": 3, "AB+": 4, "AB-": 5, "O+": 6, "O-": 7,
	}
	cycleTypes     = map[string]float64{"Regular": 0, "Irregular": 1}
	marriageStatus = map[string]float64{"Married": 1, "Unmarried": 0}
	yesNo          = map[string]float64{"Yes": 1, "No": 0}
)

// category looks value up in vocab; unknown values fall back to 0.
func category(vocab map[string]float64, value string) float64 {
	return vocab[value]
}

// EncodeRaw maps an input to its unscaled feature vector in FeatureNames order.
func EncodeRaw(in model.ClinicalInput) []float64 {
	return []float64{
		in.Age,
		in.Weight,
		in.Height,
		in.BMI,
		category(bloodGroups, in.BloodGroup),
		in.PulseRate,
		in.RR,
		in.Hb,
		category(cycleTypes, in.Cycle),
		in.CycleLength,
		category(marriageStatus, in.MarriageStatus),
		category(yesNo, in.Pregnant),
		in.NoOfAbortions,
		in.IBetaHCG1,
		in.IBetaHCG2,
		in.FSH,
		in.LH,
		in.FSHLH,
		in.Hip,
		in.Waist,
		in.WaistHipRatio,
		in.TSH,
		in.AMH,
		in.PRL,
		in.VitD3,
		in.PRG,
		in.RBS,
		category(yesNo, in.WeightGain),
		category(yesNo, in.HairGrowth),
		category(yesNo, in.SkinDarkening),
		category(yesNo, in.HairLoss),
		category(yesNo, in.Pimples),
		category(yesNo, in.FastFood),
		category(yesNo, in.RegExercise),
		in.BPSystolic,
		in.BPDiastolic,
		in.FollicleNoL,
		in.FollicleNoR,
		in.AvgFSizeL,
		in.AvgFSizeR,
		in.Endometrium,
	}
}

// FeatureEncoder turns clinical inputs into model-ready vectors, applying the
// fitted scaler when one was loaded.
type FeatureEncoder struct {
	scaler predictor.Transformer
}

// NewFeatureEncoder creates an encoder. scaler may be nil.
func NewFeatureEncoder(scaler predictor.Transformer) *FeatureEncoder {
	return &FeatureEncoder{scaler: scaler}
}

// ScalerLoaded reports whether vectors are scaled after encoding.
func (e *FeatureEncoder) ScalerLoaded() bool {
	return e.scaler != nil
}

// Encode returns the (optionally scaled) vector for in.
func (e *FeatureEncoder) Encode(in model.ClinicalInput) ([]float64, error) {
	x := EncodeRaw(in)
	if e.scaler == nil {
		return x, nil
	}
	return e.scaler.Transform(x)
}
