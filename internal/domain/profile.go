package domain

// Gender selects the Mifflin-St Jeor constant. Anything other than GenderMale
// uses the female constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel is one of the five fixed activity bands.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightlyActive"
	ModeratelyActive ActivityLevel = "moderatelyActive"
	VeryActive       ActivityLevel = "veryActive"
	ExtremelyActive  ActivityLevel = "extremelyActive"
)

// ActivityLevels lists the known activity levels in ascending order.
var ActivityLevels = []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtremelyActive}

// Multiplier returns the TDEE factor for the level. ok is false for levels
// outside the known set.
func (a ActivityLevel) Multiplier() (float64, bool) {
	switch a {
	case Sedentary:
		return 1.2, true
	case LightlyActive:
		return 1.375, true
	case ModeratelyActive:
		return 1.55, true
	case VeryActive:
		return 1.725, true
	case ExtremelyActive:
		return 1.9, true
	default:
		return 0, false
	}
}

// Goal is the user's stated diet goal.
type Goal string

const (
	WeightLoss  Goal = "weightLoss"
	MuscleGain  Goal = "muscleGain"
	Maintenance Goal = "maintenance"
)

// Goals lists the goals that have a diet plan.
var Goals = []Goal{WeightLoss, MuscleGain, Maintenance}

// Resolve maps the goal onto one of the three known goals. Unrecognised goals
// fall back to Maintenance.
func (g Goal) Resolve() Goal {
	switch g {
	case WeightLoss:
		return WeightLoss
	case MuscleGain:
		return MuscleGain
	default:
		return Maintenance
	}
}

// BiometricInput is the validated input to Compute. Weight is in kilograms,
// height in centimetres and age in whole years.
type BiometricInput struct {
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
}
