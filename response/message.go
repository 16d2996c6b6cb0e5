// Package response contains the JSON bodies and writers shared by handlers and middleware.
package response

import (
	"encoding/json"
	"net/http"

	"KanbanWebService/validation"
)

// A struct type that represents a message with a status and body.
// Message has the following properties:
// - Status: The status of the message.
// - Body: The body of the message.
type Message struct {
	Status string `json:"status"`
	Body   string `json:"body"`
}

// Error is the body of every non-2xx response. Details lists the failing
// fields of a rejected request body.
type Error struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Fail writes an Error body with the given status code.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Error{Error: message})
}
