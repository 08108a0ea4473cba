package handlers

import "net/http"

// NewMethodNotAllowedHandler answers unsupported methods with 405.
func NewMethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: MessageMethodNotAllowed})
	}
}

// NewNotFoundHandler answers unknown paths with a JSON 404.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: MessageNotFound})
	}
}
