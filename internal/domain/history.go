package domain

import (
	"context"
	"time"
)

// HistoryEntry is a stored snapshot of a computed recommendation. The plan
// body is not stored; Goal identifies it.
type HistoryEntry struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"userId"`
	Input         BiometricInput `json:"input"`
	BMI           float64        `json:"bmi"`
	BMR           int            `json:"bmr"`
	DailyCalories int            `json:"dailyCalories"`
	Macros        Macros         `json:"macros"`
	Goal          Goal           `json:"goal"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// HistoryRepository is the port for recommendation history persistence.
type HistoryRepository interface {
	AddHistoryEntry(ctx context.Context, e HistoryEntry) (int64, error)
	DeleteLatestHistoryEntry(ctx context.Context, userID int64) (bool, error)
	ListRecentHistory(ctx context.Context, userID int64, limit int) ([]HistoryEntry, error)
}
