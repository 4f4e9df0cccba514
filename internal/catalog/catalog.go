// Package catalog holds the fixed diet plan and reference food tables.
package catalog

import (
	"nutriplan/internal/domain"
)

// Static is the process-wide catalog. The tables behind it are never
// modified; every accessor hands out copies.
type Static struct{}

// New returns the static catalog.
func New() Static {
	return Static{}
}

var _ domain.Catalog = Static{}

// PlanFor returns the plan for goal, falling back to maintenance for goals
// without a plan of their own.
func (Static) PlanFor(goal domain.Goal) domain.DietPlan {
	switch goal.Resolve() {
	case domain.WeightLoss:
		return clonePlan(weightLossPlan)
	case domain.MuscleGain:
		return clonePlan(muscleGainPlan)
	default:
		return clonePlan(maintenancePlan)
	}
}

// Plans returns every plan keyed by goal.
func (c Static) Plans() map[domain.Goal]domain.DietPlan {
	out := make(map[domain.Goal]domain.DietPlan, len(domain.Goals))
	for _, g := range domain.Goals {
		out[g] = c.PlanFor(g)
	}
	return out
}

// Foods returns the full food table keyed by category.
func (Static) Foods() map[domain.FoodCategory][]domain.FoodItem {
	out := make(map[domain.FoodCategory][]domain.FoodItem, len(foods))
	for k, v := range foods {
		out[k] = append([]domain.FoodItem(nil), v...)
	}
	return out
}

// FoodsByCategory returns the foods in one category. ok is false for unknown
// categories.
func (Static) FoodsByCategory(category domain.FoodCategory) ([]domain.FoodItem, bool) {
	items, ok := foods[category]
	if !ok {
		return nil, false
	}
	return append([]domain.FoodItem(nil), items...), true
}

func clonePlan(p domain.DietPlan) domain.DietPlan {
	p.Meals = domain.Meals{
		Breakfast: append([]domain.Meal(nil), p.Meals.Breakfast...),
		Lunch:     append([]domain.Meal(nil), p.Meals.Lunch...),
		Dinner:    append([]domain.Meal(nil), p.Meals.Dinner...),
		Snacks:    append([]domain.Meal(nil), p.Meals.Snacks...),
	}
	return p
}
