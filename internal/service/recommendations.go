package service

import "pcosrisk/internal/model"

// Recommend evaluates the advisory rules in order. Every matching rule adds
// its lines; only the two consult rules exclude each other.
func Recommend(score float64, in model.ClinicalInput) []string {
	recs := make([]string, 0, 8)

	if score > 0.7 {
		recs = append(recs,
			"Consult with a gynecologist or endocrinologist immediately",
			"Consider comprehensive hormonal testing",
		)
	} else if score > 0.5 {
		recs = append(recs,
			"Schedule a consultation with a healthcare provider",
			"Monitor symptoms closely",
		)
	}

	if in.BMI > 25 {
		recs = append(recs,
			"Focus on weight management through diet and exercise",
			"Consider consulting a nutritionist",
		)
	}

	if in.RegExercise == "No" {
		recs = append(recs,
			"Incorporate regular physical activity (150 min/week)",
			"Start with low-impact exercises like walking or swimming",
		)
	}

	if in.FastFood == "Yes" {
		recs = append(recs,
			"Reduce processed and fast food consumption",
			"Focus on whole foods and balanced nutrition",
		)
	}

	if in.FSHLH > 2.5 {
		recs = append(recs, "Monitor hormonal levels regularly")
	}

	return recs
}
