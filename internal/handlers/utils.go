package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/adapter"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		slog.Error("Error encoding response", "error", err)
	}
}

func validateContext(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	default:
		return true
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(message))
}

func writeDocumentError(w http.ResponseWriter, err error) {
	docErr := commonModels.AsDocumentError(err)
	WriteErrorResponse(w, docErr.HTTPStatus(), docErr.Message)
}
