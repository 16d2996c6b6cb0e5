package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"KanbanWebService/board"
	"KanbanWebService/response"
)

// Board handles the HTTP request for the grouped kanban board: the five
// status columns with their cards, each carrying its urgency tier and
// deadline label.
//
// Tasks whose status matches no column are left out and counted in "hidden".
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(r.Context())
	if err != nil {
		h.writeError(w, r, "build board", invalidTask, taskNotFound, err)
		return
	}
	teams, err := h.teams.List(r.Context())
	if err != nil {
		h.writeError(w, r, "build board", invalidTeam, teamNotFound, err)
		return
	}

	b := board.Build(tasks, teams, h.now(), h.loc)
	if b.Hidden > 0 {
		h.log.WithFields(logrus.Fields{
			"task operation": "build board",
			"request":        "GET /board",
			"hidden":         b.Hidden,
		}).Warn("tasks with an unknown status are not shown")
	}
	response.JSON(w, http.StatusOK, b)
}
