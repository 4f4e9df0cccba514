// Package sqlite implements the domain repositories on a single SQLite file
// using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"nutriplan/internal/domain"
)

// Storage wraps a *sql.DB and implements the history and user repositories.
type Storage struct {
	db *sql.DB
}

var _ domain.HistoryRepository = (*Storage)(nil)
var _ domain.UserRepository = (*Storage)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// Open opens (or creates) the database at path and initializes the schema.
// Use ":memory:" for a throwaway database.
func Open(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	s := &Storage{db: db}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) initSchema() error {
	schema := `
    PRAGMA foreign_keys = ON;

    CREATE TABLE IF NOT EXISTS users (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        username TEXT UNIQUE NOT NULL,
        password_hash TEXT NOT NULL,
        created_at TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS sessions (
        token TEXT PRIMARY KEY,
        user_id INTEGER NOT NULL,
        user_agent TEXT NOT NULL,
        ip TEXT NOT NULL,
        expires_at TEXT NOT NULL,
        created_at TEXT NOT NULL,
        FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
    );

    CREATE TABLE IF NOT EXISTS recommendation_history (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        user_id INTEGER NOT NULL,
        weight_kg REAL NOT NULL,
        height_cm REAL NOT NULL,
        age INTEGER NOT NULL,
        gender TEXT NOT NULL,
        activity_level TEXT NOT NULL,
        requested_goal TEXT NOT NULL,
        bmi REAL NOT NULL,
        bmr INTEGER NOT NULL,
        daily_calories INTEGER NOT NULL,
        protein_g INTEGER NOT NULL,
        carbs_g INTEGER NOT NULL,
        fat_g INTEGER NOT NULL,
        goal TEXT NOT NULL,
        created_at TEXT NOT NULL,
        FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
    );

    CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
    CREATE INDEX IF NOT EXISTS idx_history_user_created ON recommendation_history(user_id, created_at);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(v string) (time.Time, error) {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", v, err)
	}
	return t, nil
}

// --- HistoryRepository ---

// AddHistoryEntry inserts a recommendation snapshot.
func (s *Storage) AddHistoryEntry(ctx context.Context, e domain.HistoryEntry) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO recommendation_history (user_id, weight_kg, height_cm, age, gender, activity_level, requested_goal,
            bmi, bmr, daily_calories, protein_g, carbs_g, fat_g, goal, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `,
		e.UserID, e.Input.Weight, e.Input.Height, e.Input.Age, string(e.Input.Gender), string(e.Input.ActivityLevel), string(e.Input.Goal),
		e.BMI, e.BMR, e.DailyCalories, e.Macros.Protein, e.Macros.Carbs, e.Macros.Fat, string(e.Goal), formatTime(e.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("failed to insert history entry: %w", err)
	}
	return res.LastInsertId()
}

// DeleteLatestHistoryEntry removes the user's most recent entry.
func (s *Storage) DeleteLatestHistoryEntry(ctx context.Context, userID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
        DELETE FROM recommendation_history WHERE id = (
            SELECT id FROM recommendation_history WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1
        )
    `, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete history entry: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ListRecentHistory returns the user's most recent entries up to limit.
func (s *Storage) ListRecentHistory(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, user_id, weight_kg, height_cm, age, gender, activity_level, requested_goal,
            bmi, bmr, daily_calories, protein_g, carbs_g, fat_g, goal, created_at
        FROM recommendation_history
        WHERE user_id = ?
        ORDER BY created_at DESC, id DESC
        LIMIT ?
    `, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	out := make([]domain.HistoryEntry, 0, limit)
	for rows.Next() {
		var (
			e                                domain.HistoryEntry
			gender, level, reqGoal, goal, at string
		)
		err := rows.Scan(&e.ID, &e.UserID, &e.Input.Weight, &e.Input.Height, &e.Input.Age, &gender, &level, &reqGoal,
			&e.BMI, &e.BMR, &e.DailyCalories, &e.Macros.Protein, &e.Macros.Carbs, &e.Macros.Fat, &goal, &at)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if e.CreatedAt, err = parseTime(at); err != nil {
			return nil, err
		}
		e.Input.Gender = domain.Gender(gender)
		e.Input.ActivityLevel = domain.ActivityLevel(level)
		e.Input.Goal = domain.Goal(reqGoal)
		e.Goal = domain.Goal(goal)
		out = append(out, e)
	}
	return out, rows.Err()
}

// --- UserRepository ---

func (s *Storage) getUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	var (
		u  domain.User
		at string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE "+where+" = ?", arg,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if u.CreatedAt, err = parseTime(at); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsername retrieves a user by username.
func (s *Storage) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getUser(ctx, "username", username)
}

// GetByID retrieves a user by ID.
func (s *Storage) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getUser(ctx, "id", id)
}

// Create creates a new user.
func (s *Storage) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)",
		username, passwordHash, formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Username: username, PasswordHash: passwordHash, CreatedAt: now}, nil
}

// Count returns the total number of users.
func (s *Storage) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}

// --- SessionRepository ---

// SessionRepo implements session persistence on Storage.
type SessionRepo struct {
	s *Storage
}

// NewSessionRepo wraps s as a SessionRepository.
func NewSessionRepo(s *Storage) *SessionRepo {
	return &SessionRepo{s: s}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	_, err := r.s.db.ExecContext(ctx,
		"INSERT INTO sessions (token, user_id, user_agent, ip, expires_at, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		token, userID, userAgent, ip, formatTime(expiresAt), formatTime(time.Now()))
	return err
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var (
		sess          domain.Session
		expires, made string
	)
	err := r.s.db.QueryRowContext(ctx,
		"SELECT token, user_id, user_agent, ip, expires_at, created_at FROM sessions WHERE token = ?", token,
	).Scan(&sess.Token, &sess.UserID, &sess.UserAgent, &sess.IP, &expires, &made)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if sess.ExpiresAt, err = parseTime(expires); err != nil {
		return nil, err
	}
	if sess.CreatedAt, err = parseTime(made); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	return err
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.s.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < ?", formatTime(time.Now()))
	return err
}
