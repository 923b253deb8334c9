package models

// Nutrients is the full nutrient vector shared by food items (per gram),
// recipes (whole-batch totals) and food log entries (scaled contributions).
type Nutrients struct {
	Calories           float64 `json:"calories"`
	Protein            float64 `json:"protein"`
	Carbs              float64 `json:"carbs"`
	Fat                float64 `json:"fat"`
	TotalSugars        float64 `json:"totalSugars"`
	AddedSugars        float64 `json:"addedSugars"`
	TransFat           float64 `json:"transFat"`
	SaturatedFat       float64 `json:"saturatedFat"`
	PolyunsaturatedFat float64 `json:"polyunsaturatedFat"`
	MonounsaturatedFat float64 `json:"monounsaturatedFat"`
	Cholesterol        float64 `json:"cholesterol"`
	Fiber              float64 `json:"fiber"`
	Calcium            float64 `json:"calcium"`
	Iron               float64 `json:"iron"`
	Sodium             float64 `json:"sodium"`
	Potassium          float64 `json:"potassium"`
	VitaminA           float64 `json:"vitaminA"`
	VitaminC           float64 `json:"vitaminC"`
	VitaminD           float64 `json:"vitaminD"`
}

// Scaled returns a copy with every field multiplied by factor.
func (n Nutrients) Scaled(factor float64) Nutrients {
	return Nutrients{
		Calories:           n.Calories * factor,
		Protein:            n.Protein * factor,
		Carbs:              n.Carbs * factor,
		Fat:                n.Fat * factor,
		TotalSugars:        n.TotalSugars * factor,
		AddedSugars:        n.AddedSugars * factor,
		TransFat:           n.TransFat * factor,
		SaturatedFat:       n.SaturatedFat * factor,
		PolyunsaturatedFat: n.PolyunsaturatedFat * factor,
		MonounsaturatedFat: n.MonounsaturatedFat * factor,
		Cholesterol:        n.Cholesterol * factor,
		Fiber:              n.Fiber * factor,
		Calcium:            n.Calcium * factor,
		Iron:               n.Iron * factor,
		Sodium:             n.Sodium * factor,
		Potassium:          n.Potassium * factor,
		VitaminA:           n.VitaminA * factor,
		VitaminC:           n.VitaminC * factor,
		VitaminD:           n.VitaminD * factor,
	}
}

// Add accumulates other into n.
func (n *Nutrients) Add(other Nutrients) {
	n.Calories += other.Calories
	n.Protein += other.Protein
	n.Carbs += other.Carbs
	n.Fat += other.Fat
	n.TotalSugars += other.TotalSugars
	n.AddedSugars += other.AddedSugars
	n.TransFat += other.TransFat
	n.SaturatedFat += other.SaturatedFat
	n.PolyunsaturatedFat += other.PolyunsaturatedFat
	n.MonounsaturatedFat += other.MonounsaturatedFat
	n.Cholesterol += other.Cholesterol
	n.Fiber += other.Fiber
	n.Calcium += other.Calcium
	n.Iron += other.Iron
	n.Sodium += other.Sodium
	n.Potassium += other.Potassium
	n.VitaminA += other.VitaminA
	n.VitaminC += other.VitaminC
	n.VitaminD += other.VitaminD
}

// Subtract removes other from n, clamping nothing; callers that need
// non-negative totals guard themselves.
func (n *Nutrients) Subtract(other Nutrients) {
	n.Add(other.Scaled(-1))
}

// DailyTotals is one day's summed contributions plus water (fluid oz).
// It is produced by the food log aggregation and snapshotted on the user
// record for the ledger's prior-day evaluation.
type DailyTotals struct {
	Nutrients `gorm:"embedded"`
	Water     float64 `json:"water"`
}
