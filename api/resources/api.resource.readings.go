// FilePath: api/resources/api.resource.readings.go
package resources

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/GYRAG/beetkar-hub/internal/errors"
	"github.com/GYRAG/beetkar-hub/internal/models"
	"github.com/GYRAG/beetkar-hub/internal/service"
	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"
)

// ReadingHandlers encapsulates the sensor-data HTTP handlers
type ReadingHandlers struct {
	service *service.Service
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

type historyParams struct {
	Range string `schema:"range"`
}

// @Summary Ingest a sensor reading
// @Description Store one reading from the hive edge device. Temperature and humidity are required; gas resistance, pressure, vibration and audio level are optional. All values are range-checked before anything is stored.
// @Tags sensor-data
// @Accept json
// @Produce json
// @Param reading body models.ReadingInput true "Metric values"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/sensor-data [post]
func (h *ReadingHandlers) IngestReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var input models.ReadingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	reading, err := h.service.IngestReading(r.Context(), &input)
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusCreated, ingestResponse{
		Success: true,
		ID:      reading.ID,
		Message: "Sensor data stored successfully",
	})
}

// @Summary Get the latest sensor reading
// @Description Return the most recent stored reading. 404 means no data has been ingested yet, as opposed to a store failure.
// @Tags sensor-data
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/sensor-data/latest [get]
func (h *ReadingHandlers) GetLatestReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	reading, err := h.service.LatestReading(r.Context())
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, dataResponse{Success: true, Data: reading})
}

// @Summary Get historical sensor readings
// @Description Return the windowed series for the requested range. Ranges up to 24h return raw rows; 7d returns hourly averages. Unknown or missing range falls back to 24h.
// @Tags sensor-data
// @Produce json
// @Param range query string false "Lookback window" Enums(15m, 1h, 24h, 7d)
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/sensor-data/history [get]
func (h *ReadingHandlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var params historyParams
	// Decode failures keep the default range; the parameter is forgiving.
	_ = queryDecoder.Decode(&params, r.URL.Query())
	timeRange := models.ParseTimeRange(params.Range)

	history, err := h.service.History(r.Context(), timeRange)
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, historyResponse{
		Success:     true,
		Data:        history.Rows(),
		Range:       string(history.Range),
		Aggregation: string(history.Aggregation),
	})
}

// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *ReadingHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Message:   "Beetkar Sensor API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// NotFound answers every unmatched method+path combination.
func (h *ReadingHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, errors.NewRouteNotFoundError())
}
