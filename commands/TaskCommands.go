// Package commands contains the commands for the application to be used for request inputs.
package commands

import "KanbanWebService/models"

// CreateTaskCommand represents a command to create a task.
// Status may be left empty, in which case the task starts as pending.
type CreateTaskCommand struct {
	Title          string  `json:"title" validate:"fieldValidator"`
	Description    *string `json:"description"`
	OSNumber       string  `json:"osNumber" validate:"fieldValidator"`
	Deadline       *string `json:"deadline"`
	EstimatedHours *string `json:"estimatedHours"`
	Team           string  `json:"team" validate:"fieldValidator"`
	Status         string  `json:"status" validate:"omitempty,statusValidator"`
}

// UpdateTaskCommand represents a command to partially update a task.
// Nil fields are left untouched. The Optional fields can also be cleared with null.
type UpdateTaskCommand struct {
	Title          *string                 `json:"title" validate:"omitnil,fieldValidator"`
	OSNumber       *string                 `json:"osNumber" validate:"omitnil,fieldValidator"`
	Team           *string                 `json:"team" validate:"omitnil,fieldValidator"`
	Status         *string                 `json:"status" validate:"omitnil,statusValidator"`
	Description    models.Optional[string] `json:"description"`
	EstimatedHours models.Optional[string] `json:"estimatedHours"`
	Deadline       models.Optional[string] `json:"deadline"`
}

// CreateTeamCommand represents a command to create a team.
type CreateTeamCommand struct {
	Name       string `json:"name" validate:"fieldValidator"`
	ColorClass string `json:"colorClass" validate:"fieldValidator"`
}
