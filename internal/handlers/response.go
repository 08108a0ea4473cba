package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-wish-tree/internal/logger"
	"github.com/sbilibin2017/gw-wish-tree/internal/services"
)

// Response messages
const (
	MessageWishCreated      = "Wish added"
	MessageWishFulfilled    = "Wish reserved"
	MessageFulfilledReset   = "Fulfilled wishes reset"
	MessageWishDeleted      = "Wish deleted"
	MessageWishUnavailable  = "Wish is already reserved"
	MessageMethodNotAllowed = "Method not supported"
	MessageNotFound         = "Not found"
)

// MessageResponse represents a successful response carrying a message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: Wish deleted
	Message string `json:"message"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid admin password
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError maps an error to its status code: validation errors become 400,
// an unavailable wish 409 and anything else 500 with the raw message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		log.Warnw("invalid request", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: vErr.Error()})
	case errors.Is(err, services.ErrWishUnavailable):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: MessageWishUnavailable})
	default:
		log.Errorw("internal server error", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
