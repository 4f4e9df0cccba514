package domain

import (
	"math"
	"strconv"
)

const (
	weightLossDeficit = 500
	muscleGainSurplus = 300

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// round rounds half up, so 2083.5 becomes 2084 and -0.5 becomes 0.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// BMI returns weight (kg) over height (m) squared, rounded to one decimal.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return roundTenth(weightKg / (h * h))
}

// roundTenth rounds to one decimal from the exact binary value of v, so
// 7.5499999 stays 7.5 where floor(v*10+0.5) would give 7.6. Exact ties
// (x.25, x.75) round up.
func roundTenth(v float64) float64 {
	if q := v * 4; q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		return math.Ceil(v*10) / 10
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}

// BMICategory buckets a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMR computes the basal metabolic rate with the Mifflin-St Jeor equation,
// rounded to whole kcal/day.
func BMR(weightKg, heightCm float64, age int, gender Gender) int {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == GenderMale {
		return round(base + 5)
	}
	return round(base - 161)
}

// DailyEnergy returns total daily energy expenditure for a BMR and activity
// level.
func DailyEnergy(bmr int, level ActivityLevel) (int, error) {
	m, ok := level.Multiplier()
	if !ok {
		return 0, ErrUnknownActivityLevel
	}
	return round(float64(bmr) * m), nil
}

// AdjustForGoal applies the goal's calorie offset to a TDEE value.
func AdjustForGoal(tdee int, goal Goal) int {
	switch goal.Resolve() {
	case WeightLoss:
		return tdee - weightLossDeficit
	case MuscleGain:
		return tdee + muscleGainSurplus
	default:
		return tdee
	}
}

// SplitMacros divides calories 25/45/30 across protein, carbs and fat. Each
// macro is rounded on its own, so the grams do not always add back up to
// exactly calories.
func SplitMacros(calories int) Macros {
	c := float64(calories)
	return Macros{
		Protein: round(c * 0.25 / kcalPerGramProtein),
		Carbs:   round(c * 0.45 / kcalPerGramCarbs),
		Fat:     round(c * 0.30 / kcalPerGramFat),
	}
}

// Calories returns the energy the macros represent.
func (m Macros) Calories() int {
	return m.Protein*kcalPerGramProtein + m.Carbs*kcalPerGramCarbs + m.Fat*kcalPerGramFat
}
