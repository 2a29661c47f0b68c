package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/fringe-portal/internal/apiclient"
	"github.com/rs/zerolog/log"
)

type jsonError struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("Failed to encode JSON response")
	}
}

// writeAPIError passes backend errors through with their status. Anything
// else is a 502.
func writeAPIError(w http.ResponseWriter, err error) {
	if apiErr, ok := apiclient.AsError(err); ok {
		writeJSON(w, apiErr.Status, jsonError{Message: apiErr.Message})
		return
	}
	log.Err(err).Msg("Backend request failed")
	writeJSON(w, http.StatusBadGateway, jsonError{Message: "Backend unavailable"})
}
