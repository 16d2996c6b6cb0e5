package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"KanbanWebService/response"
)

const (
	invalidTask  = "Invalid task data"
	taskNotFound = "Task not found"
)

// ListTasks handles the HTTP request for retrieving every task in insertion order.
//
// Example request:
// GET /tasks
//
// Example response:
//
//	[
//	  {
//	    "id": "5f0c8a52-58b6-4e1a-9d3b-0c6f7e1f2a10",
//	    "title": "Review doc",
//	    "description": null,
//	    "osNumber": "OS-42",
//	    "deadline": "2025-09-15T23:59:59.999999Z",
//	    "estimatedHours": "3",
//	    "team": "QA Testing",
//	    "status": "pendentes",
//	    "createdAt": "2025-09-01T17:53:27.833Z",
//	    "updatedAt": "2025-09-01T17:53:27.833Z"
//	  },
//	  ... ]
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(r.Context())
	if err != nil {
		h.writeError(w, r, "get all tasks", invalidTask, taskNotFound, err)
		return
	}
	response.JSON(w, http.StatusOK, tasks)
}

// CreateTask handles the HTTP request for creating a new task.
// The title, osNumber and team fields are required. The status defaults to
// "pendentes". An empty deadline means no deadline, and a date without a time
// means the end of that day in the board timezone.
//
// Example request body:
//
//	{
//	  "title": "Review doc",
//	  "osNumber": "OS-42",
//	  "team": "QA Testing",
//	  "deadline": "2025-09-15"
//	}
//
// Responds 201 with the created task, or 400 with every failing field:
//
//	{
//	  "error": "Invalid task data",
//	  "details": [{"field": "title", "message": "must not be empty"}]
//	}
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		h.writeError(w, r, "create a task", invalidTask, taskNotFound, err)
		return
	}
	input, err := h.validator.DecodeCreateTask(body)
	if err != nil {
		h.writeError(w, r, "create a task", invalidTask, taskNotFound, err)
		return
	}
	task, err := h.tasks.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, r, "create a task", invalidTask, taskNotFound, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"task operation": "create a task",
		"request":        "POST /tasks",
		"id":             task.Id,
	}).Info("Processing request")
	response.JSON(w, http.StatusCreated, task)
}

// GetTask handles the HTTP request for retrieving a task by id. Responds 404
// when the id is unknown.
//
// Example request:
// GET /tasks/5f0c8a52-58b6-4e1a-9d3b-0c6f7e1f2a10
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.tasks.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get task by id", invalidTask, taskNotFound, err)
		return
	}
	response.JSON(w, http.StatusOK, task)
}

// UpdateTask handles the HTTP request for partially updating a task.
// Fields left out of the body keep their value. description, estimatedHours
// and deadline can be cleared with null or an empty string.
//
// Example request body:
//
//	{
//	  "status": "concluidas",
//	  "deadline": null
//	}
//
// Responds 200 with the updated task, 400 for invalid fields and 404 when the
// id is unknown.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		h.writeError(w, r, "update a task", invalidTask, taskNotFound, err)
		return
	}
	patch, err := h.validator.DecodeUpdateTask(body)
	if err != nil {
		h.writeError(w, r, "update a task", invalidTask, taskNotFound, err)
		return
	}
	task, err := h.tasks.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, r, "update a task", invalidTask, taskNotFound, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"task operation": "update a task",
		"request":        "PATCH /tasks/{id}",
		"id":             task.Id,
	}).Info("Processing request")
	response.JSON(w, http.StatusOK, task)
}

// DeleteTask handles the HTTP request for deleting a task. Responds 204 when
// a task was removed and 404 otherwise.
//
// Example request:
// DELETE /tasks/5f0c8a52-58b6-4e1a-9d3b-0c6f7e1f2a10
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed, err := h.tasks.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "delete a task", invalidTask, taskNotFound, err)
		return
	}
	if !removed {
		response.Fail(w, http.StatusNotFound, taskNotFound)
		return
	}

	h.log.WithFields(logrus.Fields{
		"task operation": "delete",
		"request":        "DELETE /tasks/{id}",
		"id":             id,
	}).Info("Processing request")
	w.WriteHeader(http.StatusNoContent)
}
