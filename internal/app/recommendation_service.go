package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"nutriplan/internal/domain"
)

// CalculateInput is the unvalidated request for a recommendation. Pointer
// fields distinguish "absent" from zero.
type CalculateInput struct {
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	Age           *int     `json:"age"`
	Gender        string   `json:"gender"`
	ActivityLevel string   `json:"activityLevel"`
	Goal          string   `json:"goal"`
}

// Validate checks every field and returns the biometric input the
// calculator expects. Unknown goals pass through; the calculator maps them
// to maintenance. Unknown activity levels are rejected.
func (in CalculateInput) Validate() (domain.BiometricInput, error) {
	switch {
	case in.Weight == nil:
		return domain.BiometricInput{}, missing("weight")
	case in.Height == nil:
		return domain.BiometricInput{}, missing("height")
	case in.Age == nil:
		return domain.BiometricInput{}, missing("age")
	case strings.TrimSpace(in.Gender) == "":
		return domain.BiometricInput{}, missing("gender")
	case strings.TrimSpace(in.ActivityLevel) == "":
		return domain.BiometricInput{}, missing("activityLevel")
	case strings.TrimSpace(in.Goal) == "":
		return domain.BiometricInput{}, missing("goal")
	}

	if !positive(*in.Weight) {
		return domain.BiometricInput{}, invalid("weight", "must be > 0")
	}
	if !positive(*in.Height) {
		return domain.BiometricInput{}, invalid("height", "must be > 0")
	}
	if *in.Age <= 0 {
		return domain.BiometricInput{}, invalid("age", "must be > 0")
	}

	level := domain.ActivityLevel(strings.TrimSpace(in.ActivityLevel))
	if _, ok := level.Multiplier(); !ok {
		return domain.BiometricInput{}, invalid("activityLevel", fmt.Sprintf("must be one of %v", domain.ActivityLevels))
	}

	return domain.BiometricInput{
		Weight:        *in.Weight,
		Height:        *in.Height,
		Age:           *in.Age,
		Gender:        domain.Gender(strings.TrimSpace(in.Gender)),
		ActivityLevel: level,
		Goal:          domain.Goal(strings.TrimSpace(in.Goal)),
	}, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// RecommendationService encapsulates the diet recommendation use cases.
type RecommendationService struct {
	plans   domain.PlanLookup
	history domain.HistoryRepository
}

// NewRecommendationService creates a RecommendationService. history may be
// nil, in which case nothing is recorded.
func NewRecommendationService(plans domain.PlanLookup, history domain.HistoryRepository) *RecommendationService {
	return &RecommendationService{plans: plans, history: history}
}

// Calculate validates the input and computes a recommendation without
// recording it.
func (s *RecommendationService) Calculate(in CalculateInput) (domain.Recommendation, error) {
	bio, err := in.Validate()
	if err != nil {
		return domain.Recommendation{}, err
	}
	return domain.Compute(bio, s.plans)
}

// CalculateFor computes a recommendation and records it in the user's
// history.
func (s *RecommendationService) CalculateFor(ctx context.Context, userID int64, in CalculateInput) (domain.Recommendation, error) {
	bio, err := in.Validate()
	if err != nil {
		return domain.Recommendation{}, err
	}
	rec, err := domain.Compute(bio, s.plans)
	if err != nil {
		return domain.Recommendation{}, err
	}
	if s.history == nil {
		return rec, nil
	}

	entry := domain.HistoryEntry{
		UserID:        userID,
		Input:         bio,
		BMI:           rec.BMI,
		BMR:           rec.BMR,
		DailyCalories: rec.DailyCalories,
		Macros:        rec.Macros,
		Goal:          rec.Goal,
		CreatedAt:     time.Now(),
	}
	if _, err := s.history.AddHistoryEntry(ctx, entry); err != nil {
		return domain.Recommendation{}, fmt.Errorf("record history: %w", err)
	}
	return rec, nil
}

// DefaultRecentLimit is used when ListRecent is given a non-positive limit.
const DefaultRecentLimit = 10

const maxRecentLimit = 100

// ListRecent returns the user's most recent recommendations up to limit,
// clamped to 1..100.
func (s *RecommendationService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return []domain.HistoryEntry{}, nil
	}
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > maxRecentLimit:
		limit = maxRecentLimit
	}
	return s.history.ListRecentHistory(ctx, userID, limit)
}

// UndoLast deletes the user's most recent recommendation.
func (s *RecommendationService) UndoLast(ctx context.Context, userID int64) (bool, error) {
	if s.history == nil {
		return false, nil
	}
	return s.history.DeleteLatestHistoryEntry(ctx, userID)
}
