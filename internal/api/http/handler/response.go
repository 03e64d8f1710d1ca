package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dtroode/sociable-server/internal/logger"
)

// Envelope is the uniform response body: resultCode 0 on success, 1 on
// failure with messages explaining why.
type Envelope struct {
	ResultCode int      `json:"resultCode"`
	Messages   []string `json:"messages"`
	Data       any      `json:"data"`
}

func writeData(w http.ResponseWriter, log *logger.Logger, status int, data any) {
	if data == nil {
		data = struct{}{}
	}
	writeJSON(w, log, status, Envelope{
		ResultCode: 0,
		Messages:   []string{},
		Data:       data,
	})
}

func writeJSON(w http.ResponseWriter, log *logger.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to write response",
			"error", err.Error())
	}
}
