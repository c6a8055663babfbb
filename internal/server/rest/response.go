package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/userdirectory/internal/logging"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type createdResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

func writeJSON(ctx context.Context, log logging.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error(ctx, "failed to write response", "error", err)
	}
}

// writeMessage answers a client-facing outcome (2xx, 400, 404).
func writeMessage(ctx context.Context, log logging.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, log, w, status, messageResponse{Message: msg})
}

// writeError answers a server-side failure. msg must not carry internals.
func writeError(ctx context.Context, log logging.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, log, w, status, errorResponse{Error: msg})
}
