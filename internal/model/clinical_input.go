package model

// ClinicalInput is the fixed set of measurements and answers scored by the risk model.
type ClinicalInput struct {
	Age            float64 `json:"age"`
	Weight         float64 `json:"weight"`
	Height         float64 `json:"height"`
	BMI            float64 `json:"bmi"`
	BloodGroup     string  `json:"blood_group"`
	PulseRate      float64 `json:"pulse_rate"`
	RR             float64 `json:"rr"`
	Hb             float64 `json:"hb"`
	Cycle          string  `json:"cycle"`
	CycleLength    float64 `json:"cycle_length"`
	MarriageStatus string  `json:"marriage_status"`
	Pregnant       string  `json:"pregnant"`
	NoOfAbortions  float64 `json:"no_of_abortions"`
	IBetaHCG1      float64 `json:"i_beta_hcg_1"`
	IBetaHCG2      float64 `json:"i_beta_hcg_2"`
	FSH            float64 `json:"fsh"`
	LH             float64 `json:"lh"`
	FSHLH          float64 `json:"fsh_lh"`
	Hip            float64 `json:"hip"`
	Waist          float64 `json:"waist"`
	WaistHipRatio  float64 `json:"waist_hip_ratio"`
	TSH            float64 `json:"tsh"`
	AMH            float64 `json:"amh"`
	PRL            float64 `json:"prl"`
	VitD3          float64 `json:"vit_d3"`
	PRG            float64 `json:"prg"`
	RBS            float64 `json:"rbs"`
	WeightGain     string  `json:"weight_gain"`
	HairGrowth     string  `json:"hair_growth"`
	SkinDarkening  string  `json:"skin_darkening"`
	HairLoss       string  `json:"hair_loss"`
	Pimples        string  `json:"pimples"`
	FastFood       string  `json:"fast_food"`
	RegExercise    string  `json:"reg_exercise"`
	BPSystolic     float64 `json:"bp_systolic"`
	BPDiastolic    float64 `json:"bp_diastolic"`
	FollicleNoL    float64 `json:"follicle_no_l"`
	FollicleNoR    float64 `json:"follicle_no_r"`
	AvgFSizeL      float64 `json:"avg_f_size_l"`
	AvgFSizeR      float64 `json:"avg_f_size_r"`
	Endometrium    float64 `json:"endometrium"`
}
