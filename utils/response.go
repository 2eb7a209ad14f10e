package utils

import (
	"encoding/json"
	"net/http"

	"triviaapi/models"
)

var errorMessages = map[int]string{
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "Unprocessable Entity",
	http.StatusInternalServerError: "internal server error",
	http.StatusGatewayTimeout:      "request timed out",
}

func SendJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// SendError writes the {success, error, message} envelope for statusCode.
func SendError(w http.ResponseWriter, statusCode int) {
	message, ok := errorMessages[statusCode]
	if !ok {
		message = http.StatusText(statusCode)
	}
	SendJSON(w, statusCode, models.ErrorResponse{
		Success: false,
		Error:   statusCode,
		Message: message,
	})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	SendError(w, http.StatusNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	SendError(w, http.StatusMethodNotAllowed)
}
