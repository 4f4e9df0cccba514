package app

import (
	"fmt"

	"nutriplan/internal/domain"
)

// CatalogService exposes the static diet plan and food tables.
type CatalogService struct {
	catalog domain.Catalog
}

// NewCatalogService creates a CatalogService over the given catalog.
func NewCatalogService(c domain.Catalog) *CatalogService {
	return &CatalogService{catalog: c}
}

// Plans returns every diet plan keyed by goal.
func (s *CatalogService) Plans() map[domain.Goal]domain.DietPlan {
	return s.catalog.Plans()
}

// Plan returns the plan for goal, or the maintenance plan for an unknown goal.
func (s *CatalogService) Plan(goal domain.Goal) domain.DietPlan {
	return s.catalog.PlanFor(goal)
}

// Foods returns the reference food table keyed by category.
func (s *CatalogService) Foods() map[domain.FoodCategory][]domain.FoodItem {
	return s.catalog.Foods()
}

// FoodsByCategory returns the foods in one category.
func (s *CatalogService) FoodsByCategory(category string) ([]domain.FoodItem, error) {
	items, ok := s.catalog.FoodsByCategory(domain.FoodCategory(category))
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCategory, category)
	}
	return items, nil
}
