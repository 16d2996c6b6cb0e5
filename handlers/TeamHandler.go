package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"KanbanWebService/response"
)

const (
	invalidTeam  = "Invalid team data"
	teamNotFound = "Team not found"
)

// ListTeams handles the HTTP request for retrieving every team.
//
// Example response:
//
//	[
//	  {"id": "0b7e...", "name": "Core View", "colorClass": "team-blue"},
//	  ... ]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.List(r.Context())
	if err != nil {
		h.writeError(w, r, "get all teams", invalidTeam, teamNotFound, err)
		return
	}
	response.JSON(w, http.StatusOK, teams)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teams.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get team by id", invalidTeam, teamNotFound, err)
		return
	}
	response.JSON(w, http.StatusOK, team)
}

// CreateTeam handles the HTTP request for adding a team. Both fields are required.
//
// Example request body:
//
//	{"name": "Ops", "colorClass": "team-red"}
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		h.writeError(w, r, "create a team", invalidTeam, teamNotFound, err)
		return
	}
	input, err := h.validator.DecodeCreateTeam(body)
	if err != nil {
		h.writeError(w, r, "create a team", invalidTeam, teamNotFound, err)
		return
	}
	team, err := h.teams.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, r, "create a team", invalidTeam, teamNotFound, err)
		return
	}
	response.JSON(w, http.StatusCreated, team)
}
