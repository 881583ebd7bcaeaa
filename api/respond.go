package api

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse carries field-level detail for rejected payloads.
type validationResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}
