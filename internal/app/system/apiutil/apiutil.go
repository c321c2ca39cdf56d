// internal/app/system/apiutil/apiutil.go

// Package apiutil writes the JSON response envelope used by the console's
// REST endpoints. Every response carries a status and message; successful
// reads additionally carry a payload and, for editable resources, an
// anti-forgery token the client echoes back on write.
package apiutil

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Envelope is the wire shape of every REST response.
type Envelope struct {
	Status    int         `json:"status"`
	Message   string      `json:"message"`
	Payload   interface{} `json:"payload,omitempty"`
	XSRFToken string      `json:"xsrf_token,omitempty"`
}

// SendJSON writes an Envelope with the given HTTP status. Encoding failures
// are logged; headers are already committed by then so nothing else can be
// done for the client.
func SendJSON(w http.ResponseWriter, log *zap.Logger, status int, message string, payload interface{}, xsrfToken string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	env := Envelope{
		Status:    status,
		Message:   message,
		Payload:   payload,
		XSRFToken: xsrfToken,
	}
	if err := json.NewEncoder(w).Encode(env); err != nil && log != nil {
		log.Error("encode response envelope failed", zap.Error(err))
	}
}

// SendError writes a payload-free envelope. Used for 4xx/5xx responses.
func SendError(w http.ResponseWriter, log *zap.Logger, status int, message string) {
	SendJSON(w, log, status, message, nil, "")
}
