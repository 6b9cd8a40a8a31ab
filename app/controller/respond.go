package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"merch-store-backend/apperrors"
	"merch-store-backend/models"
)

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ writeJSON: failed to encode response: %v", err)
	}
}

// writeSuccess writes the {"success": true} envelope.
func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// writeError maps an error to its HTTP status and writes the
// {"success": false, "error": ...} envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, apperrors.ErrOutOfStock):
		status = http.StatusBadRequest
		message = apperrors.OutOfStockMessage
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrPersistence):
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, models.SuccessResponse{Success: false, Error: message})
}
