// services/goal_calculator.go
package services

import (
	"errors"
	"math"
)

// Calculates a user's personalized daily nutrition goal profile (calories,
// macros, water and micronutrients) from their biometric form. Pure: the
// caller persists the returned profile.

var (
	ErrInvalidBiometricInput = errors.New("all biometric fields must be filled out")
	ErrBelowMinimumAge       = errors.New("users must be aged 13 or older")
)

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightlyActive"
	ModeratelyActive ActivityLevel = "moderatelyActive"
	VeryActive       ActivityLevel = "veryActive"
	ExtraActive      ActivityLevel = "extraActive"
)

type WeightGoal string

const (
	LoseWeight     WeightGoal = "loseWeight"
	MaintainWeight WeightGoal = "maintainWeight"
	GainMuscle     WeightGoal = "gainMuscle"
)

type PregnancyStatus string

const (
	NotPregnant   PregnancyStatus = ""
	Pregnant      PregnancyStatus = "pregnant"
	Breastfeeding PregnancyStatus = "breastfeeding"
)

type Trimester string

const (
	FirstTrimester  Trimester = "firstTrimester"
	SecondTrimester Trimester = "secondTrimester"
	ThirdTrimester  Trimester = "thirdTrimester"
)

// BiometricInput is the calculator form. It is never persisted; only the
// resulting profile is written to the user record.
type BiometricInput struct {
	WeightLbs       float64         `json:"weightLbs"`
	HeightFeet      float64         `json:"heightFeet"`
	HeightInches    float64         `json:"heightInches"`
	Age             int             `json:"age"`
	Sex             Sex             `json:"sex"`
	ActivityLevel   ActivityLevel   `json:"activityLevel"`
	Goal            WeightGoal      `json:"goal"`
	PregnancyStatus PregnancyStatus `json:"pregnancyStatus"`
	Trimester       Trimester       `json:"trimester"`
}

// GoalProfile is the complete set of computed daily targets.
type GoalProfile struct {
	Calories           int     `json:"dailyCalorieGoal"`
	Protein            int     `json:"dailyProteinGoal"` // grams
	Carbs              int     `json:"dailyCarbsGoal"`   // grams
	Fat                int     `json:"dailyFatGoal"`     // grams
	Water              float64 `json:"water"`            // ml
	TotalSugars        int     `json:"totalSugars"`
	AddedSugars        int     `json:"addedSugars"`
	TransFat           int     `json:"transFat"`
	SaturatedFat       int     `json:"saturatedFat"`
	PolyunsaturatedFat int     `json:"polyunsaturatedFat"`
	MonounsaturatedFat int     `json:"monounsaturatedFat"`
	Cholesterol        int     `json:"cholesterol"`
	Fiber              int     `json:"fiber"`
	Calcium            int     `json:"calcium"`
	Iron               int     `json:"iron"`
	Sodium             int     `json:"sodium"`
	Potassium          int     `json:"potassium"`
	VitaminA           int     `json:"vitaminA"`
	VitaminC           int     `json:"vitaminC"`
	VitaminD           int     `json:"vitaminD"`
}

const (
	lbsToKg    = 0.453592
	inchesToCm = 2.54
)

// CalculateGoals validates the form and derives the full goal profile.
func CalculateGoals(in BiometricInput) (*GoalProfile, error) {
	if math.IsNaN(in.WeightLbs) || in.WeightLbs <= 0 ||
		math.IsNaN(in.HeightFeet) || math.IsNaN(in.HeightInches) ||
		in.HeightFeet <= 0 || in.HeightInches < 0 || in.Age <= 0 {
		return nil, ErrInvalidBiometricInput
	}
	if in.Age < 13 {
		return nil, ErrBelowMinimumAge
	}

	weightKg := in.WeightLbs * lbsToKg
	heightCm := (in.HeightFeet*12 + in.HeightInches) * inchesToCm

	bmr := CalculateBMR(weightKg, heightCm, in.Age, in.Sex)
	tdee := CalculateTDEE(bmr, in.ActivityLevel)
	if tdee == 0 {
		return nil, ErrInvalidBiometricInput
	}
	caloricIntakeGoal := caloricGoal(tdee, in.Goal)
	if caloricIntakeGoal == 0 {
		return nil, ErrInvalidBiometricInput
	}

	// Water is derived from TDEE before the pregnancy calorie add-on.
	water := waterGoal(tdee, in.PregnancyStatus)

	// Calorie add-ons apply after the weight-goal multiplier.
	if in.PregnancyStatus == Pregnant {
		switch in.Trimester {
		case SecondTrimester:
			caloricIntakeGoal += 340
		case ThirdTrimester:
			caloricIntakeGoal += 450
		}
	} else if in.PregnancyStatus == Breastfeeding {
		caloricIntakeGoal += 500
	}

	profile := &GoalProfile{
		Calories: int(math.Round(caloricIntakeGoal)),
		Protein:  int(math.Round(0.25 * caloricIntakeGoal / 4)),
		Carbs:    int(math.Round(0.45 * caloricIntakeGoal / 4)),
		Fat:      int(math.Round(0.3 * caloricIntakeGoal / 9)),
		Water:    water,
	}
	applyNutrientTargets(profile, in.Sex, in.Age, in.PregnancyStatus, caloricIntakeGoal)
	return profile, nil
}

// CalculateBMR implements Mifflin-St Jeor.
func CalculateBMR(weightKg, heightCm float64, age int, sex Sex) float64 {
	if sex == SexMale {
		return 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	}
	return 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels yield 0.
func CalculateTDEE(bmr float64, level ActivityLevel) float64 {
	switch level {
	case Sedentary:
		return bmr * 1.2
	case LightlyActive:
		return bmr * 1.375
	case ModeratelyActive:
		return bmr * 1.55
	case VeryActive:
		return bmr * 1.725
	case ExtraActive:
		return bmr * 1.9
	default:
		return 0
	}
}

func caloricGoal(tdee float64, goal WeightGoal) float64 {
	switch goal {
	case LoseWeight:
		return tdee * 0.85
	case MaintainWeight:
		return tdee
	case GainMuscle:
		return tdee * 1.1
	default:
		return 0
	}
}

func waterGoal(tdee float64, status PregnancyStatus) float64 {
	switch status {
	case Pregnant:
		return tdee
	case Breastfeeding:
		return tdee * 1.1039
	default:
		return tdee * 0.8
	}
}

// applyNutrientTargets fills the micronutrient and sub-macro targets. The
// bracket assignments run in a fixed order: the adult sex/pregnancy bracket
// first, then the child/adolescent brackets (4-8, 9-13, 14-18), so a
// narrower age bracket always overwrites the general adult values. The
// observed assignment order must not be reordered.
func applyNutrientTargets(p *GoalProfile, sex Sex, age int, status PregnancyStatus, kcal float64) {
	p.TotalSugars = int(math.Round(0.1 * kcal / 4))
	p.AddedSugars = int(math.Round(0.05 * kcal / 4))
	p.TransFat = int(math.Round(0.01 * kcal / 9))
	p.SaturatedFat = int(math.Round(0.09 * kcal / 9))
	p.PolyunsaturatedFat = int(math.Round(0.1 * kcal / 9))
	p.MonounsaturatedFat = int(math.Round(0.15 * kcal / 9))

	if sex == SexMale {
		p.Fiber = 38
		if age >= 19 && age <= 50 {
			p.Calcium = 1000
			p.Iron = 8
			p.Sodium = 2300
			p.VitaminA = 900
			p.VitaminC = 90
			p.VitaminD = 15
			p.Potassium = 3400
			p.Cholesterol = 200
		} else if age > 70 {
			p.Calcium = 1300
			p.Sodium = 1500
			p.VitaminD = 20
			p.Cholesterol = 200
			p.Iron = 8
			p.Potassium = 3400
			p.VitaminA = 900
			p.VitaminC = 90
		} else if age > 50 {
			p.Sodium = 1500
			p.Cholesterol = 200
			p.Calcium = 1000
			p.Iron = 8
			p.Potassium = 3400
			p.VitaminA = 900
			p.VitaminC = 90
			p.VitaminD = 15
		}
	} else {
		p.Fiber = 25
		if status == Pregnant {
			p.Calcium = 1000
			p.Iron = 27
			p.VitaminA = 770
			p.VitaminC = 85
			p.VitaminD = 15
			p.Potassium = 2900
			p.Sodium = 2300
			p.Cholesterol = 200
		} else if status == Breastfeeding {
			p.Calcium = 1000
			p.Iron = 9
			p.VitaminA = 1300
			p.VitaminC = 120
			p.VitaminD = 15
			p.Potassium = 2800
			p.Sodium = 2300
			p.Cholesterol = 200
		} else {
			if age >= 19 && age <= 50 {
				p.Calcium = 1000
				p.Iron = 18
				p.Sodium = 2300
				p.Cholesterol = 200
				p.VitaminA = 700
				p.VitaminC = 75
				p.VitaminD = 15
				p.Potassium = 2600
			} else if age > 50 {
				p.Calcium = 1300
				p.Sodium = 1500
				p.Cholesterol = 200
				p.Iron = 8
				p.Potassium = 2600
				p.VitaminA = 700
				p.VitaminC = 75
				p.VitaminD = 15
			} else if age >= 14 && age <= 18 {
				p.Calcium = 1000
				p.Cholesterol = 170
				p.Sodium = 2300
				p.Iron = 15
				p.VitaminA = 700
				p.VitaminC = 65
				p.VitaminD = 15
			}
		}
	}

	// Child and adolescent brackets overwrite whatever the adult bracket set.
	if age >= 4 && age <= 8 {
		p.Iron = 10
		p.Calcium = 1000
		p.Cholesterol = 170
		p.VitaminA = 400
		p.VitaminC = 25
		p.VitaminD = 15
		p.Potassium = 2300
		p.Sodium = 2200
	} else if age >= 9 && age <= 13 {
		p.Iron = 8
		p.Cholesterol = 170
		p.Calcium = 1300
		p.VitaminA = 600
		p.VitaminC = 45
		p.VitaminD = 15
		if sex == SexMale {
			p.Potassium = 2500
		} else {
			p.Potassium = 2300
		}
		p.Sodium = 2500
	} else if age >= 14 && age <= 18 {
		p.Calcium = 1300
		p.Cholesterol = 170
		if sex == SexMale {
			p.Potassium = 3000
			p.Iron = 11
			p.VitaminA = 900
			p.VitaminC = 75
		} else {
			p.Potassium = 2300
			p.Iron = 15
			p.VitaminA = 700
			p.VitaminC = 65
		}
		p.Sodium = 2500
		p.VitaminD = 15
	}
}
