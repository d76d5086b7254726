package handler

import "pcosrisk/internal/model"

// AssessmentRequest is the body of POST /assessments. Every field is
// required; pointers distinguish an explicit zero from a missing value.
type AssessmentRequest struct {
	Age            *float64 `json:"age" validate:"required"`
	Weight         *float64 `json:"weight" validate:"required"`
	Height         *float64 `json:"height" validate:"required"`
	BMI            *float64 `json:"bmi" validate:"required"`
	BloodGroup     *string  `json:"blood_group" validate:"required"`
	PulseRate      *float64 `json:"pulse_rate" validate:"required"`
	RR             *float64 `json:"rr" validate:"required"`
	Hb             *float64 `json:"hb" validate:"required"`
	Cycle          *string  `json:"cycle" validate:"required"`
	CycleLength    *float64 `json:"cycle_length" validate:"required"`
	MarriageStatus *string  `json:"marriage_status" validate:"required"`
	Pregnant       *string  `json:"pregnant" validate:"required"`
	NoOfAbortions  *float64 `json:"no_of_abortions" validate:"required"`
	IBetaHCG1      *float64 `json:"i_beta_hcg_1" validate:"required"`
	IBetaHCG2      *float64 `json:"i_beta_hcg_2" validate:"required"`
	FSH            *float64 `json:"fsh" validate:"required"`
	LH             *float64 `json:"lh" validate:"required"`
	FSHLH          *float64 `json:"fsh_lh" validate:"required"`
	Hip            *float64 `json:"hip" validate:"required"`
	Waist          *float64 `json:"waist" validate:"required"`
	WaistHipRatio  *float64 `json:"waist_hip_ratio" validate:"required"`
	TSH            *float64 `json:"tsh" validate:"required"`
	AMH            *float64 `json:"amh" validate:"required"`
	PRL            *float64 `json:"prl" validate:"required"`
	VitD3          *float64 `json:"vit_d3" validate:"required"`
	PRG            *float64 `json:"prg" validate:"required"`
	RBS            *float64 `json:"rbs" validate:"required"`
	WeightGain     *string  `json:"weight_gain" validate:"required"`
	HairGrowth     *string  `json:"hair_growth" validate:"required"`
	SkinDarkening  *string  `json:"skin_darkening" validate:"required"`
	HairLoss       *string  `json:"hair_loss" validate:"required"`
	Pimples        *string  `json:"pimples" validate:"required"`
	FastFood       *string  `json:"fast_food" validate:"required"`
	RegExercise    *string  `json:"reg_exercise" validate:"required"`
	BPSystolic     *float64 `json:"bp_systolic" validate:"required"`
	BPDiastolic    *float64 `json:"bp_diastolic" validate:"required"`
	FollicleNoL    *float64 `json:"follicle_no_l" validate:"required"`
	FollicleNoR    *float64 `json:"follicle_no_r" validate:"required"`
	AvgFSizeL      *float64 `json:"avg_f_size_l" validate:"required"`
	AvgFSizeR      *float64 `json:"avg_f_size_r" validate:"required"`
	Endometrium    *float64 `json:"endometrium" validate:"required"`
}

// ToClinicalInput converts a validated request.
func (r *AssessmentRequest) ToClinicalInput() model.ClinicalInput {
	return model.ClinicalInput{
		Age:            *r.Age,
		Weight:         *r.Weight,
		Height:         *r.Height,
		BMI:            *r.BMI,
		BloodGroup:     *r.BloodGroup,
		PulseRate:      *r.PulseRate,
		RR:             *r.RR,
		Hb:             *r.Hb,
		Cycle:          *r.Cycle,
		CycleLength:    *r.CycleLength,
		MarriageStatus: *r.MarriageStatus,
		Pregnant:       *r.Pregnant,
		NoOfAbortions:  *r.NoOfAbortions,
		IBetaHCG1:      *r.IBetaHCG1,
		IBetaHCG2:      *r.IBetaHCG2,
		FSH:            *r.FSH,
		LH:             *r.LH,
		FSHLH:          *r.FSHLH,
		Hip:            *r.Hip,
		Waist:          *r.Waist,
		WaistHipRatio:  *r.WaistHipRatio,
		TSH:            *r.TSH,
		AMH:            *r.AMH,
		PRL:            *r.PRL,
		VitD3:          *r.VitD3,
		PRG:            *r.PRG,
		RBS:            *r.RBS,
		WeightGain:     *r.WeightGain,
		HairGrowth:     *r.HairGrowth,
		SkinDarkening:  *r.SkinDarkening,
		HairLoss:       *r.HairLoss,
		Pimples:        *r.Pimples,
		FastFood:       *r.FastFood,
		RegExercise:    *r.RegExercise,
		BPSystolic:     *r.BPSystolic,
		BPDiastolic:    *r.BPDiastolic,
		FollicleNoL:    *r.FollicleNoL,
		FollicleNoR:    *r.FollicleNoR,
		AvgFSizeL:      *r.AvgFSizeL,
		AvgFSizeR:      *r.AvgFSizeR,
		Endometrium:    *r.Endometrium,
	}
}
