// Package httperror defines the single error envelope every Doka service
// returns to callers, and the small set of typed taxonomy errors listed in
// the error handling design (invalid input, authentication failure, not
// found, conflict, locked, database unavailable, technical failure).
package httperror

import (
	"encoding/json"
	"net/http"
)

// HTTPError is the JSON envelope written on every non-2xx response:
// {"field": "message", ...}. Code never appears in the body — it is the
// HTTP status line.
type HTTPError struct {
	Code   int
	Errors *map[string]string
}

func (e HTTPError) Error() string {
	b, err := json.Marshal(e.Errors)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// New builds an HTTPError for an arbitrary status code.
func New(code int, errors *map[string]string) error {
	return HTTPError{Code: code, Errors: errors}
}

// NewForSingleField builds an HTTPError carrying exactly one field/message pair.
func NewForSingleField(code int, field, message string) error {
	return HTTPError{Code: code, Errors: &map[string]string{field: message}}
}

func NewForBadRequest(errors *map[string]string) error {
	return New(http.StatusBadRequest, errors)
}

func NewForBadRequestWithSingleField(field, message string) error {
	return NewForSingleField(http.StatusBadRequest, field, message)
}

func NewForNotFoundWithSingleField(field, message string) error {
	return NewForSingleField(http.StatusNotFound, field, message)
}

func NewForConflictWithSingleField(field, message string) error {
	return NewForSingleField(http.StatusConflict, field, message)
}

func NewForForbiddenWithSingleField(field, message string) error {
	return NewForSingleField(http.StatusForbidden, field, message)
}

func NewForUnauthorizedWithSingleField(field, message string) error {
	return NewForSingleField(http.StatusUnauthorized, field, message)
}

func NewForLockedWithSingleField(field, message string) error {
	return NewForSingleField(http.StatusLocked, field, message)
}

func NewForGoneWithSingleField(field, message string) error {
	return NewForSingleField(http.StatusGone, field, message)
}

func NewForServiceUnavailableWithSingleField(field, message string) error {
	return NewForSingleField(http.StatusServiceUnavailable, field, message)
}

func NewForInternalServerErrorWithSingleField(field, message string) error {
	return NewForSingleField(http.StatusInternalServerError, field, message)
}

// ResponseError writes err as a JSON body with the appropriate status code.
// HTTPError values use their own Code and Errors map; any other error is
// reported as a 500 with the error's message as the body.
func ResponseError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "Application/json")

	httpErr, ok := err.(HTTPError)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(err.Error())
		return
	}

	w.WriteHeader(httpErr.Code)
	json.NewEncoder(w).Encode(httpErr.Errors)
}
