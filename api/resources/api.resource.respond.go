package resources

import (
	"encoding/json"
	"net/http"

	"github.com/GYRAG/beetkar-hub/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

// Response envelopes. Every body carries an explicit success flag; the
// HTTP status code always agrees with it.

type ingestResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type historyResponse struct {
	Success     bool   `json:"success"`
	Data        any    `json:"data"`
	Range       string `json:"range"`
	Aggregation string `json:"aggregation"`
}

type errorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(errorResponse{
		Success:   false,
		Error:     err.Message,
		RequestID: err.RequestID,
	})
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
