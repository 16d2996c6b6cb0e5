// Package handlers provides the HTTP request handlers for KanbanWebService.
//
// This package contains the handlers for the task CRUD operations, the team
// reference data and the grouped kanban board, plus the router that wires
// them together with the middleware stack.
// Every request body goes through the validation package before it reaches a
// store, and every failure is mapped to a JSON error body in writeError.
package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"KanbanWebService/response"
	"KanbanWebService/store"
	"KanbanWebService/validation"
)

const maxBodyBytes = 1 << 20

// Handler serves the API from the stores it is given.
type Handler struct {
	tasks     store.TaskStore
	teams     store.TeamStore
	validator *validation.Validator
	log       logrus.FieldLogger
	loc       *time.Location
	now       func() time.Time
}

// New returns a Handler. loc is the board timezone used for deadline labels.
func New(tasks store.TaskStore, teams store.TeamStore, v *validation.Validator, log logrus.FieldLogger, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		tasks:     tasks,
		teams:     teams,
		validator: v,
		log:       log,
		loc:       loc,
		now:       time.Now,
	}
}

// WithClock replaces the clock used by the board. Tests only.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, &validation.Error{Fields: []validation.FieldError{{Field: "body", Message: "could not be read"}}}
	}
	return body, nil
}

// writeError maps err to its status code. Unexpected errors are logged and
// answered with a generic body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, operation, invalidMessage, notFoundMessage string, err error) {
	fields := logrus.Fields{
		"task operation": operation,
		"request":        r.Method + " " + r.URL.Path,
	}

	if verr, ok := validation.AsError(err); ok {
		h.log.WithFields(fields).WithField("fields", verr.Fields).Info(invalidMessage)
		response.JSON(w, http.StatusBadRequest, response.Error{Error: invalidMessage, Details: verr.Fields})
		return
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.log.WithFields(fields).WithField("limit", tooLarge.Limit).Info("request body too large")
		response.Fail(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		h.log.WithFields(fields).Info(notFoundMessage)
		response.Fail(w, http.StatusNotFound, notFoundMessage)
		return
	}

	h.log.WithFields(fields).Error(err.Error())
	response.Fail(w, http.StatusInternalServerError, "internal server error")
}

// Health reports that the process is serving.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	response.Fail(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowed answers known routes called with an unsupported method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	response.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
}
