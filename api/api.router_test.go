package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GYRAG/beetkar-hub/api"
	"github.com/GYRAG/beetkar-hub/internal/errors"
	"github.com/GYRAG/beetkar-hub/internal/models"
	"github.com/GYRAG/beetkar-hub/internal/repository"
	"github.com/GYRAG/beetkar-hub/internal/service"
)

type fakeReadingRepo struct {
	inserted  []models.ReadingInput
	insertErr error

	latest    *models.SensorReading
	latestErr error

	raw      []models.SensorReading
	hourly   []models.HourlyAverage
	queryErr error
}

func (r *fakeReadingRepo) Insert(_ context.Context, in *models.ReadingInput) (*models.SensorReading, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.inserted = append(r.inserted, *in)
	return &models.SensorReading{
		ID:          int64(len(r.inserted)),
		Temperature: *in.Temperature,
		Humidity:    *in.Humidity,
		Timestamp:   time.Now().UTC(),
	}, nil
}

func (r *fakeReadingRepo) Latest(context.Context) (*models.SensorReading, error) {
	if r.latestErr != nil {
		return nil, r.latestErr
	}
	return r.latest, nil
}

func (r *fakeReadingRepo) ListSince(context.Context, time.Time) ([]models.SensorReading, error) {
	return r.raw, r.queryErr
}

func (r *fakeReadingRepo) HourlyAverages(context.Context, time.Time) ([]models.HourlyAverage, error) {
	return r.hourly, r.queryErr
}

func (r *fakeReadingRepo) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func newTestRouter(repo *fakeReadingRepo) *api.Router {
	return api.NewRouter(service.New(repo, nil, nil))
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	payload := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), "every response must be valid JSON")
	return rec, payload
}

func TestIngestValidReading(t *testing.T) {
	repo := &fakeReadingRepo{}
	router := newTestRouter(repo)

	rec, payload := doJSON(t, router, http.MethodPost, "/api/sensor-data",
		`{"temperature": 25.5, "humidity": 60}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(1), payload["id"])
	assert.Equal(t, "Sensor data stored successfully", payload["message"])
	require.Len(t, repo.inserted, 1)
}

func TestIngestOutOfRangeIsRejected(t *testing.T) {
	repo := &fakeReadingRepo{}
	router := newTestRouter(repo)

	rec, payload := doJSON(t, router, http.MethodPost, "/api/sensor-data",
		`{"temperature": 120, "humidity": 60}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Contains(t, payload["error"], "between -40 and 80")
	assert.Empty(t, repo.inserted)
}

func TestIngestNonNumericFieldIsRejected(t *testing.T) {
	repo := &fakeReadingRepo{}
	router := newTestRouter(repo)

	rec, payload := doJSON(t, router, http.MethodPost, "/api/sensor-data",
		`{"temperature": "warm", "humidity": 60}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Empty(t, repo.inserted)
}

func TestIngestMalformedBodyIsRejected(t *testing.T) {
	router := newTestRouter(&fakeReadingRepo{})

	rec, payload := doJSON(t, router, http.MethodPost, "/api/sensor-data", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestIngestStoreFailureIs500(t *testing.T) {
	repo := &fakeReadingRepo{insertErr: errors.NewDatabaseError("failed to insert sensor reading", nil)}
	router := newTestRouter(repo)

	rec, payload := doJSON(t, router, http.MethodPost, "/api/sensor-data",
		`{"temperature": 20, "humidity": 50}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestLatestWithoutDataIs404(t *testing.T) {
	repo := &fakeReadingRepo{latestErr: repository.ErrNotFound}
	router := newTestRouter(repo)

	rec, payload := doJSON(t, router, http.MethodGet, "/api/sensor-data/latest", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "No sensor data available", payload["error"])
}

func TestLatestReturnsReading(t *testing.T) {
	repo := &fakeReadingRepo{latest: &models.SensorReading{
		ID: 3, Temperature: 31.5, Humidity: 44, Timestamp: time.Now().UTC(),
	}}
	router := newTestRouter(repo)

	rec, payload := doJSON(t, router, http.MethodGet, "/api/sensor-data/latest", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 31.5, data["temperature"])
	assert.Equal(t, 44.0, data["humidity"])
}

func TestHistoryDefaultsTo24hRaw(t *testing.T) {
	router := newTestRouter(&fakeReadingRepo{})

	rec, payload := doJSON(t, router, http.MethodGet, "/api/sensor-data/history", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "24h", payload["range"])
	assert.Equal(t, "raw", payload["aggregation"])

	data, ok := payload["data"].([]any)
	require.True(t, ok, "empty window must serialize as an array")
	assert.Empty(t, data)
}

func TestHistorySevenDaysIsHourly(t *testing.T) {
	repo := &fakeReadingRepo{hourly: []models.HourlyAverage{
		{Temperature: 21.5, Humidity: 50, Timestamp: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)},
	}}
	router := newTestRouter(repo)

	rec, payload := doJSON(t, router, http.MethodGet, "/api/sensor-data/history?range=7d", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7d", payload["range"])
	assert.Equal(t, "hourly", payload["aggregation"])
	data := payload["data"].([]any)
	require.Len(t, data, 1)
}

func TestHistoryUnknownRangeFallsBack(t *testing.T) {
	router := newTestRouter(&fakeReadingRepo{})

	rec, payload := doJSON(t, router, http.MethodGet, "/api/sensor-data/history?range=bogus", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "24h", payload["range"])
	assert.Equal(t, "raw", payload["aggregation"])
}

func TestHistoryStoreFailureIs500(t *testing.T) {
	repo := &fakeReadingRepo{queryErr: errors.NewDatabaseError("failed to get sensor readings", nil)}
	router := newTestRouter(repo)

	rec, payload := doJSON(t, router, http.MethodGet, "/api/sensor-data/history", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(&fakeReadingRepo{})

	for _, path := range []string{"/health", "/"} {
		rec, payload := doJSON(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", payload["status"])
		assert.NotEmpty(t, payload["timestamp"])
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	router := newTestRouter(&fakeReadingRepo{})

	rec, payload := doJSON(t, router, http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Not found", payload["error"])
}

func TestWrongMethodIs404(t *testing.T) {
	router := newTestRouter(&fakeReadingRepo{})

	rec, payload := doJSON(t, router, http.MethodDelete, "/api/sensor-data", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", payload["error"])
}
