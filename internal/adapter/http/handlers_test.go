package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	adapthttp "nutriplan/internal/adapter/http"
	"nutriplan/internal/adapter/memory"
	"nutriplan/internal/app"
	"nutriplan/internal/catalog"
	"nutriplan/internal/domain"
)

// ---------------------------------------------------------------------------
// Mock repositories (function-fields pattern)
// ---------------------------------------------------------------------------

type mockHistoryRepo struct {
	addFn    func(ctx context.Context, e domain.HistoryEntry) (int64, error)
	deleteFn func(ctx context.Context, userID int64) (bool, error)
	listFn   func(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error)
}

func (m *mockHistoryRepo) AddHistoryEntry(ctx context.Context, e domain.HistoryEntry) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, e)
	}
	return 1, nil
}

func (m *mockHistoryRepo) DeleteLatestHistoryEntry(ctx context.Context, userID int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return true, nil
}

func (m *mockHistoryRepo) ListRecentHistory(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return []domain.HistoryEntry{
		{ID: 1, UserID: userID, BMI: 22.9, BMR: 1674, DailyCalories: 1509, Goal: domain.WeightLoss, CreatedAt: time.Now()},
	}, nil
}

type mockUserRepo struct{}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	return &domain.User{ID: 1, Username: username}, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int, error) {
	return 0, nil
}

type mockSessionRepo struct{}

func (m *mockSessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

// ---------------------------------------------------------------------------
// Test-server helpers
// ---------------------------------------------------------------------------

func writeIndex(t *testing.T) string {
	t.Helper()
	webDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(webDir, "index.html"), []byte("<html></html>"), 0o600); err != nil {
		t.Fatal(err)
	}
	return webDir
}

// newTestServer runs with authentication disabled, so every request is
// attributed to the local user.
func newTestServer(t *testing.T, hr *mockHistoryRepo) *httptest.Server {
	t.Helper()

	if hr == nil {
		hr = &mockHistoryRepo{}
	}

	cat := catalog.New()
	recs := app.NewRecommendationService(cat, hr)
	cs := app.NewCatalogService(cat)
	authSvc := app.NewAuthService(&mockUserRepo{}, &mockSessionRepo{})

	srv := adapthttp.New(recs, cs, authSvc, writeIndex(t)).WithoutAuth()
	return httptest.NewServer(srv.Handler())
}

// newAuthServer runs with real in-memory users and sessions. The Remote-User
// header is honoured only when forwardAuth is set.
func newAuthServer(t *testing.T, forwardAuth bool) (*httptest.Server, *memory.DB) {
	t.Helper()

	db := memory.New()
	cat := catalog.New()
	recs := app.NewRecommendationService(cat, db)
	cs := app.NewCatalogService(cat)
	authSvc := app.NewAuthService(db, db.NewSessionRepo())

	srv := adapthttp.New(recs, cs, authSvc, writeIndex(t))
	if forwardAuth {
		srv = srv.WithForwardAuth()
	}
	return httptest.NewServer(srv.Handler()), db
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return m
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	var body []byte
	switch p := payload.(type) {
	case string:
		body = []byte(p)
	default:
		var err error
		if body, err = json.Marshal(p); err != nil {
			t.Fatal(err)
		}
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func referenceInput() map[string]any {
	return map[string]any{
		"weight":        70,
		"height":        175,
		"age":           25,
		"gender":        "male",
		"activityLevel": "sedentary",
		"goal":          "weightLoss",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body["ok"])
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestCalculate(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/api/calculate", referenceInput())
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["bmi"] != 22.9 {
		t.Errorf("bmi = %v; want 22.9", body["bmi"])
	}
	if body["bmiCategory"] != "Normal" {
		t.Errorf("bmiCategory = %v; want Normal", body["bmiCategory"])
	}
	if body["bmr"] != 1674.0 {
		t.Errorf("bmr = %v; want 1674", body["bmr"])
	}
	if body["dailyCalories"] != 1509.0 {
		t.Errorf("dailyCalories = %v; want 1509", body["dailyCalories"])
	}
	macros, _ := body["macros"].(map[string]any)
	if macros["protein"] != 94.0 || macros["carbs"] != 170.0 || macros["fat"] != 50.0 {
		t.Errorf("unexpected macros %v", macros)
	}
	plan, _ := body["dietPlan"].(map[string]any)
	if plan["name"] != "Weight Loss Diet" {
		t.Errorf("dietPlan.name = %v", plan["name"])
	}
	if _, ok := body["goal"]; ok {
		t.Error("resolved goal should not be serialized")
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	read := func() []byte {
		resp := postJSON(t, ts.URL+"/api/calculate", referenceInput())
		defer resp.Body.Close() //nolint:errcheck
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return buf.Bytes()
	}
	if a, b := read(), read(); !bytes.Equal(a, b) {
		t.Errorf("responses differ:\n%s\n%s", a, b)
	}
}

func TestCalculateValidation(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(m map[string]any)
		raw        string
		wantStatus int
		wantPlan   string
	}{
		{name: "missing weight", mutate: func(m map[string]any) { delete(m, "weight") }, wantStatus: http.StatusBadRequest},
		{name: "missing gender", mutate: func(m map[string]any) { delete(m, "gender") }, wantStatus: http.StatusBadRequest},
		{name: "non-numeric height", mutate: func(m map[string]any) { m["height"] = "tall" }, wantStatus: http.StatusBadRequest},
		{name: "zero weight", mutate: func(m map[string]any) { m["weight"] = 0 }, wantStatus: http.StatusBadRequest},
		{name: "negative age", mutate: func(m map[string]any) { m["age"] = -3 }, wantStatus: http.StatusBadRequest},
		{name: "unknown activity level", mutate: func(m map[string]any) { m["activityLevel"] = "athlete" }, wantStatus: http.StatusBadRequest},
		{name: "unknown field", mutate: func(m map[string]any) { m["bodyFat"] = 12 }, wantStatus: http.StatusBadRequest},
		{name: "malformed json", raw: "{", wantStatus: http.StatusBadRequest},
		{name: "unknown goal falls back", mutate: func(m map[string]any) { m["goal"] = "bulk" }, wantStatus: http.StatusOK, wantPlan: "Maintenance Diet"},
		{name: "muscle gain", mutate: func(m map[string]any) { m["goal"] = "muscleGain" }, wantStatus: http.StatusOK, wantPlan: "Muscle Gain Diet"},
	}

	ts := newTestServer(t, nil)
	defer ts.Close()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var payload any = tc.raw
			if tc.raw == "" {
				m := referenceInput()
				tc.mutate(m)
				payload = m
			}
			resp := postJSON(t, ts.URL+"/api/calculate", payload)
			defer resp.Body.Close() //nolint:errcheck

			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, resp.StatusCode)
			}
			body := decodeBody(t, resp)
			if tc.wantStatus != http.StatusOK {
				if _, ok := body["error"]; !ok {
					t.Fatal("response missing 'error' field")
				}
				return
			}
			plan, _ := body["dietPlan"].(map[string]any)
			if plan["name"] != tc.wantPlan {
				t.Errorf("dietPlan.name = %v; want %s", plan["name"], tc.wantPlan)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/calculate"},
		{http.MethodGet, "/api/recommendations/undo-last"},
		{http.MethodPost, "/api/recommendations/recent"},
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/api/diets/weightLoss"},
		{http.MethodPost, "/api/foods"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, ts.URL+tc.path, nil)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close() //nolint:errcheck

			if resp.StatusCode != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d", resp.StatusCode)
			}
			if body := decodeBody(t, resp); body["error"] != "method not allowed" {
				t.Errorf("unexpected body %v", body)
			}
		})
	}
}

func TestUnknownAPIPath(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/nope")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCalculateRecordsHistory(t *testing.T) {
	var got domain.HistoryEntry
	ts := newTestServer(t, &mockHistoryRepo{
		addFn: func(_ context.Context, e domain.HistoryEntry) (int64, error) {
			got = e
			return 5, nil
		},
	})
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/api/calculate", referenceInput())
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got.UserID != 1 || got.DailyCalories != 1509 {
		t.Errorf("unexpected history entry %+v", got)
	}
}

func TestCalculateHistoryFailure(t *testing.T) {
	ts := newTestServer(t, &mockHistoryRepo{
		addFn: func(context.Context, domain.HistoryEntry) (int64, error) {
			return 0, errors.New("connection refused")
		},
	})
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/api/calculate", referenceInput())
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if strings.Contains(body["error"].(string), "connection refused") {
		t.Error("internal error details should not leak")
	}
}

func TestRecommendationsRecent(t *testing.T) {
	var gotLimit int
	ts := newTestServer(t, &mockHistoryRepo{
		listFn: func(_ context.Context, _ int64, limit int) ([]domain.HistoryEntry, error) {
			gotLimit = limit
			return []domain.HistoryEntry{{ID: 3, DailyCalories: 2083}}, nil
		},
	})
	defer ts.Close()

	tests := []struct {
		query string
		want  int
	}{
		{"", 10},
		{"?limit=3", 3},
		{"?limit=abc", 10},
		{"?limit=-1", 10},
	}
	for _, tc := range tests {
		resp, err := http.Get(ts.URL + "/api/recommendations/recent" + tc.query)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		body := decodeBody(t, resp)
		_ = resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%q: expected 200, got %d", tc.query, resp.StatusCode)
		}
		if gotLimit != tc.want {
			t.Errorf("%q: limit = %d; want %d", tc.query, gotLimit, tc.want)
		}
		items, _ := body["items"].([]any)
		if len(items) != 1 {
			t.Errorf("%q: expected 1 item, got %v", tc.query, body["items"])
		}
	}
}

func TestRecommendationsUndoLast(t *testing.T) {
	ts := newTestServer(t, &mockHistoryRepo{
		deleteFn: func(context.Context, int64) (bool, error) { return false, nil },
	})
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/api/recommendations/undo-last", "")
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["ok"] != true || body["deleted"] != false {
		t.Errorf("unexpected body %v", body)
	}
}

func TestDiets(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/diets")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := decodeBody(t, resp)
	_ = resp.Body.Close()

	for _, goal := range []string{"weightLoss", "muscleGain", "maintenance"} {
		if _, ok := body[goal]; !ok {
			t.Errorf("missing plan %q", goal)
		}
	}

	tests := []struct {
		goal string
		want string
	}{
		{"weightLoss", "Weight Loss Diet"},
		{"muscleGain", "Muscle Gain Diet"},
		{"keto", "Maintenance Diet"},
	}
	for _, tc := range tests {
		resp, err := http.Get(ts.URL + "/api/diets/" + tc.goal)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		body := decodeBody(t, resp)
		_ = resp.Body.Close()
		if body["name"] != tc.want {
			t.Errorf("%s: name = %v; want %s", tc.goal, body["name"], tc.want)
		}
	}
}

func TestFoods(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/foods")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := decodeBody(t, resp)
	_ = resp.Body.Close()
	if len(body) != 3 {
		t.Errorf("expected 3 categories, got %d", len(body))
	}

	resp, err = http.Get(ts.URL + "/api/foods/proteins")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var items []domain.FoodItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	_ = resp.Body.Close()
	if len(items) == 0 {
		t.Error("expected protein foods")
	}

	resp, err = http.Get(ts.URL + "/api/foods/sweets")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestSPAFallback(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/some/client/route")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Cache-Control") != "no-store" {
		t.Errorf("expected no-store, got %q", resp.Header.Get("Cache-Control"))
	}
}

func TestAuthFlow(t *testing.T) {
	ts, _ := newAuthServer(t, false)
	defer ts.Close()

	// Anonymous callers are refused history but still get recommendations.
	resp, err := http.Get(ts.URL + "/api/recommendations/recent")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	resp = postJSON(t, ts.URL+"/api/calculate", referenceInput())
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("anonymous calculate: expected 200, got %d", resp.StatusCode)
	}

	creds := map[string]string{"username": "admin", "password": "supersecret"}
	resp = postJSON(t, ts.URL+"/api/auth/setup", creds)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("setup: expected 200, got %d", resp.StatusCode)
	}
	resp = postJSON(t, ts.URL+"/api/auth/setup", creds)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second setup: expected 409, got %d", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/auth/login", map[string]string{"username": "admin", "password": "wrong"})
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/auth/login", creds)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			session = c
		}
	}
	if session == nil {
		t.Fatal("expected session cookie")
	}

	do := func(method, path string, payload any) *http.Response {
		var buf bytes.Buffer
		if payload != nil {
			_ = json.NewEncoder(&buf).Encode(payload)
		}
		req, _ := http.NewRequest(method, ts.URL+path, &buf)
		req.AddCookie(session)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		return resp
	}

	resp = do(http.MethodPost, "/api/calculate", referenceInput())
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("calculate: expected 200, got %d", resp.StatusCode)
	}

	resp = do(http.MethodGet, "/api/recommendations/recent", nil)
	body := decodeBody(t, resp)
	_ = resp.Body.Close()
	items, _ := body["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 recorded recommendation, got %v", body["items"])
	}

	resp = do(http.MethodPost, "/api/recommendations/undo-last", nil)
	body = decodeBody(t, resp)
	_ = resp.Body.Close()
	if body["deleted"] != true {
		t.Errorf("expected deleted=true, got %v", body)
	}

	resp = do(http.MethodPost, "/api/auth/logout", nil)
	_ = resp.Body.Close()
	resp = do(http.MethodGet, "/api/recommendations/recent", nil)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("after logout: expected 401, got %d", resp.StatusCode)
	}
}

func TestForwardAuth(t *testing.T) {
	ts, db := newAuthServer(t, true)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/recommendations/recent", nil)
	req.Header.Set("Remote-User", "proxyuser")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if u, _ := db.GetByUsername(context.Background(), "proxyuser"); u == nil {
		t.Error("expected forward-auth user to be provisioned")
	}
}

func TestRemoteUserIgnoredByDefault(t *testing.T) {
	ts, db := newAuthServer(t, false)
	defer ts.Close()

	payload, _ := json.Marshal(referenceInput())
	for _, name := range []string{"alice", "bob"} {
		req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/calculate", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Remote-User", name)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("calculate: expected 200, got %d", resp.StatusCode)
		}
	}

	if n, _ := db.Count(context.Background()); n != 0 {
		t.Errorf("expected no users provisioned from Remote-User, got %d", n)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/recommendations/recent", nil)
	req.Header.Set("Remote-User", "alice")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("recent with spoofed header: expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthConfig(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/auth/config")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body := decodeBody(t, resp)
	if body["sso_enabled"] != false || body["auth_disabled"] != true {
		t.Errorf("unexpected config %v", body)
	}

	resp2, err := http.Get(ts.URL + "/api/auth/sso/login")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp2.Body.Close() //nolint:errcheck
	if resp2.StatusCode != http.StatusNotFound {
		t.Errorf("sso login with sso disabled: expected 404, got %d", resp2.StatusCode)
	}
}

func TestToolsMount(t *testing.T) {
	cat := catalog.New()
	tools := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})
	srv := adapthttp.New(app.NewRecommendationService(cat, nil), app.NewCatalogService(cat),
		app.NewAuthService(&mockUserRepo{}, &mockSessionRepo{}), writeIndex(t)).WithTools(tools)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/mcp", "{}")
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected tools handler, got %d", resp.StatusCode)
	}

	// Other methods reach the tools handler rather than the SPA fallback.
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/mcp", nil)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp2.Body.Close() //nolint:errcheck
	if resp2.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("PUT /mcp: expected 405, got %d", resp2.StatusCode)
	}
}

func TestAPIOnlyWithoutWebDir(t *testing.T) {
	cat := catalog.New()
	srv := adapthttp.New(app.NewRecommendationService(cat, nil), app.NewCatalogService(cat),
		app.NewAuthService(&mockUserRepo{}, &mockSessionRepo{}), "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["error"] != "not found" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestCORS(t *testing.T) {
	cat := catalog.New()
	srv := adapthttp.New(app.NewRecommendationService(cat, nil), app.NewCatalogService(cat),
		app.NewAuthService(&mockUserRepo{}, &mockSessionRepo{}), writeIndex(t)).
		WithCORS([]string{"https://app.example.com"})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
