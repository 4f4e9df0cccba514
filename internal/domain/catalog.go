package domain

// Meal is a single meal option inside a diet plan.
type Meal struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}

// Meals groups a plan's meal options by time of day.
type Meals struct {
	Breakfast []Meal `json:"breakfast"`
	Lunch     []Meal `json:"lunch"`
	Dinner    []Meal `json:"dinner"`
	Snacks    []Meal `json:"snacks"`
}

// DietPlan is one of the fixed plans, one per goal.
type DietPlan struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	DailyCalories int    `json:"dailyCalories"`
	Meals         Meals  `json:"meals"`
}

// FoodCategory groups the reference food table.
type FoodCategory string

const (
	Proteins FoodCategory = "proteins"
	Carbs    FoodCategory = "carbs"
	Fats     FoodCategory = "fats"
)

// FoodCategories lists the categories in display order.
var FoodCategories = []FoodCategory{Proteins, Carbs, Fats}

// FoodItem is a reference food with nutrition per serving.
type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Catalog is the read-only port for the static plan and food tables.
type Catalog interface {
	PlanLookup
	Plans() map[Goal]DietPlan
	Foods() map[FoodCategory][]FoodItem
	FoodsByCategory(category FoodCategory) ([]FoodItem, bool)
}
