package handler

import (
	"encoding/json"
	"net/http"
)

// The API uses two error envelopes, matching what legacy clients expect:
// {"message": …} for explicit validation/not-found/conflict answers and
// {"error": …} for server faults and the missing-participants rejection.

type messageEnvelope struct {
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

type listEnvelope struct {
	Total int64       `json:"total"`
	Take  int         `json:"take"`
	Skip  int         `json:"skip"`
	Items interface{} `json:"items"`
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageEnvelope{Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
