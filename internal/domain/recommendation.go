package domain

import "errors"

// ErrUnknownActivityLevel is returned when an activity level has no TDEE
// multiplier.
var ErrUnknownActivityLevel = errors.New("unknown activity level")

// Macros holds daily macro-nutrient targets in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Recommendation is the result of Compute.
type Recommendation struct {
	BMI           float64  `json:"bmi"`
	BMICategory   string   `json:"bmiCategory"`
	BMR           int      `json:"bmr"`
	DailyCalories int      `json:"dailyCalories"`
	DietPlan      DietPlan `json:"dietPlan"`
	Macros        Macros   `json:"macros"`
	Goal          Goal     `json:"-"`
}

// PlanLookup resolves the diet plan for a goal.
type PlanLookup interface {
	PlanFor(goal Goal) DietPlan
}

// Compute derives a recommendation from biometric input. It does not check
// that weight, height and age are positive; callers validate those. The only
// error is ErrUnknownActivityLevel. An unrecognised goal is not an error and
// selects the maintenance plan.
func Compute(in BiometricInput, plans PlanLookup) (Recommendation, error) {
	bmr := BMR(in.Weight, in.Height, in.Age, in.Gender)
	tdee, err := DailyEnergy(bmr, in.ActivityLevel)
	if err != nil {
		return Recommendation{}, err
	}

	goal := in.Goal.Resolve()
	calories := AdjustForGoal(tdee, goal)
	bmi := BMI(in.Weight, in.Height)

	return Recommendation{
		BMI:           bmi,
		BMICategory:   BMICategory(bmi),
		BMR:           bmr,
		DailyCalories: calories,
		DietPlan:      plans.PlanFor(goal),
		Macros:        SplitMacros(calories),
		Goal:          goal,
	}, nil
}
