package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nutriplan/internal/domain"
)

const historyColumns = "id, user_id, weight_kg, height_cm, age, gender, activity_level, requested_goal, bmi, bmr, daily_calories, protein_g, carbs_g, fat_g, goal, created_at"

// AddHistoryEntry inserts a recommendation snapshot.
func (d *DB) AddHistoryEntry(ctx context.Context, e domain.HistoryEntry) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO recommendation_history(user_id, weight_kg, height_cm, age, gender, activity_level, requested_goal, bmi, bmr, daily_calories, protein_g, carbs_g, fat_g, goal, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id;`,
		e.UserID, e.Input.Weight, e.Input.Height, e.Input.Age, string(e.Input.Gender), string(e.Input.ActivityLevel), string(e.Input.Goal),
		e.BMI, e.BMR, e.DailyCalories, e.Macros.Protein, e.Macros.Carbs, e.Macros.Fat, string(e.Goal), e.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteLatestHistoryEntry removes the user's most recent entry.
func (d *DB) DeleteLatestHistoryEntry(ctx context.Context, userID int64) (bool, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"SELECT id FROM recommendation_history WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1;", userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	_, err = d.sql.ExecContext(ctx, "DELETE FROM recommendation_history WHERE id=$1 AND user_id=$2;", id, userID)
	return err == nil, err
}

// ListRecentHistory returns the user's most recent entries up to limit.
func (d *DB) ListRecentHistory(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+historyColumns+" FROM recommendation_history WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.HistoryEntry, 0, limit)
	for rows.Next() {
		e, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanHistory(rows *sql.Rows) (domain.HistoryEntry, error) {
	var (
		e                          domain.HistoryEntry
		gender, level, reqGoal, gl string
	)
	err := rows.Scan(&e.ID, &e.UserID, &e.Input.Weight, &e.Input.Height, &e.Input.Age, &gender, &level, &reqGoal,
		&e.BMI, &e.BMR, &e.DailyCalories, &e.Macros.Protein, &e.Macros.Carbs, &e.Macros.Fat, &gl, &e.CreatedAt)
	if err != nil {
		return e, err
	}
	e.Input.Gender = domain.Gender(gender)
	e.Input.ActivityLevel = domain.ActivityLevel(level)
	e.Input.Goal = domain.Goal(reqGoal)
	e.Goal = domain.Goal(gl)
	return e, nil
}
