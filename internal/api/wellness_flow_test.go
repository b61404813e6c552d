package api

import (
	"net/http"
	"strconv"
	"testing"
)

func TestMoodTrackingReplacesSameDayEntry(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	cookie := registerTestUser(t, app)

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/wellness/mood", map[string]any{
		"mood": "happy",
	}, cookie), -1)
	if err != nil {
		t.Fatalf("mood request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from mood, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if tips, ok := body["tips"].([]any); !ok || len(tips) == 0 {
		t.Fatalf("expected mood tips alongside the entry, got %v", body["tips"])
	}

	// A second post for the same day replaces the entry.
	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/wellness/mood", map[string]any{
		"mood":     "tired",
		"symptoms": "headache",
	}, cookie), -1)
	if err != nil {
		t.Fatalf("mood request failed: %v", err)
	}
	body = decodeJSONBody(t, response)
	mood := body["mood"].(map[string]any)
	if mood["mood"] != "tired" || mood["symptoms"] != "headache" {
		t.Fatalf("expected replaced mood entry, got %v", mood)
	}

	response, err = app.Test(jsonRequest(t, http.MethodGet, "/api/history", nil, cookie), -1)
	if err != nil {
		t.Fatalf("history request failed: %v", err)
	}
	body = decodeJSONBody(t, response)
	moods, ok := body["moods"].([]any)
	if !ok || len(moods) != 1 {
		t.Fatalf("expected a single mood row for the day, got %v", body["moods"])
	}
}

func TestMoodRequiresValue(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	cookie := registerTestUser(t, app)

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/wellness/mood", map[string]any{
		"symptoms": "cramps",
	}, cookie), -1)
	if err != nil {
		t.Fatalf("mood request failed: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without a mood, got %d", response.StatusCode)
	}
}

func TestWaterTrackingReportsWeeklyStats(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	cookie := registerTestUser(t, app)

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/wellness/water", map[string]any{
		"drank_water": true,
		"liters":      1.5,
	}, cookie), -1)
	if err != nil {
		t.Fatalf("water request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from water, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	week := body["week"].(map[string]any)
	if days, _ := week["days_with_water"].(float64); days != 1 {
		t.Fatalf("expected 1 day with water, got %v", week["days_with_water"])
	}
	if liters, _ := week["total_liters"].(float64); liters != 1.5 {
		t.Fatalf("expected 1.5 total liters, got %v", week["total_liters"])
	}

	// Posting again for the same day replaces rather than accumulates.
	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/wellness/water", map[string]any{
		"drank_water": true,
		"liters":      2.0,
	}, cookie), -1)
	if err != nil {
		t.Fatalf("water request failed: %v", err)
	}
	body = decodeJSONBody(t, response)
	week = body["week"].(map[string]any)
	if liters, _ := week["total_liters"].(float64); liters != 2.0 {
		t.Fatalf("expected replaced total 2.0 liters, got %v", week["total_liters"])
	}
}

func TestSelfCareAppends(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	cookie := registerTestUser(t, app)

	for _, activityType := range []string{"yoga", "meditation"} {
		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/wellness/self-care", map[string]any{
			"activity_type":    activityType,
			"duration_minutes": 20,
		}, cookie), -1)
		if err != nil {
			t.Fatalf("self-care request failed: %v", err)
		}
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 from self-care, got %d", response.StatusCode)
		}
	}

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/wellness/self-care", nil, cookie), -1)
	if err != nil {
		t.Fatalf("self-care list failed: %v", err)
	}
	body := decodeJSONBody(t, response)
	activities, ok := body["activities"].([]any)
	if !ok || len(activities) != 2 {
		t.Fatalf("expected two self-care activities, got %v", body["activities"])
	}
}

func TestFavoriteTipLifecycle(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	cookie := registerTestUser(t, app)

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/content/favorites", map[string]any{
		"tip_text": "Stay hydrated!",
	}, cookie), -1)
	if err != nil {
		t.Fatalf("save favorite failed: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 from save favorite, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	favorite := body["favorite"].(map[string]any)
	firstID := favorite["id"].(float64)

	// Saving the same text again returns the existing row.
	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/content/favorites", map[string]any{
		"tip_text": "Stay hydrated!",
	}, cookie), -1)
	if err != nil {
		t.Fatalf("save favorite failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for a duplicate favorite, got %d", response.StatusCode)
	}
	body = decodeJSONBody(t, response)
	favorite = body["favorite"].(map[string]any)
	if favorite["id"].(float64) != firstID {
		t.Fatalf("expected the existing favorite returned, got id %v", favorite["id"])
	}

	response, err = app.Test(jsonRequest(t, http.MethodGet, "/api/content/favorites", nil, cookie), -1)
	if err != nil {
		t.Fatalf("list favorites failed: %v", err)
	}
	body = decodeJSONBody(t, response)
	favorites := body["favorites"].([]any)
	if len(favorites) != 1 {
		t.Fatalf("expected a single favorite, got %d", len(favorites))
	}

	target := "/api/content/favorites/" + strconv.Itoa(int(firstID))
	response, err = app.Test(jsonRequest(t, http.MethodDelete, target, nil, cookie), -1)
	if err != nil {
		t.Fatalf("delete favorite failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from delete, got %d", response.StatusCode)
	}

	// Deleting again reports not found.
	response, err = app.Test(jsonRequest(t, http.MethodDelete, target, nil, cookie), -1)
	if err != nil {
		t.Fatalf("delete favorite failed: %v", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for a repeated delete, got %d", response.StatusCode)
	}
}

func TestExportReportReturnsPDF(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	cookie := registerTestUser(t, app)

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/export/report", nil, cookie), -1)
	if err != nil {
		t.Fatalf("export request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from export, got %d", response.StatusCode)
	}
	if got := response.Header.Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	if got := response.Header.Get("Content-Disposition"); got == "" {
		t.Fatal("expected a content disposition header")
	}
}
