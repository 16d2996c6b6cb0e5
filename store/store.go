// Package store defines the task and team storage contracts shared by the
// memory and MySQL backends.
package store

import (
	"context"
	"errors"
	"fmt"

	"KanbanWebService/models"
)

// ErrNotFound is returned, possibly wrapped, when an operation targets a missing id.
var ErrNotFound = errors.New("record not found")

// TaskStore holds the authoritative set of tasks.
type TaskStore interface {
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, id string) (models.Task, error)
	Create(ctx context.Context, in models.NewTask) (models.Task, error)
	Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// TeamStore holds the reference set of teams.
type TeamStore interface {
	List(ctx context.Context) ([]models.Team, error)
	Get(ctx context.Context, id string) (models.Team, error)
	Create(ctx context.Context, in models.NewTeam) (models.Team, error)
}

// SeedTeams creates teams only when the store holds none.
func SeedTeams(ctx context.Context, s TeamStore, teams []models.NewTeam) error {
	existing, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list teams: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, team := range teams {
		if _, err := s.Create(ctx, team); err != nil {
			return fmt.Errorf("failed to seed team %q: %w", team.Name, err)
		}
	}
	return nil
}

// SeedTasks creates tasks only when the store holds none.
func SeedTasks(ctx context.Context, s TaskStore, tasks []models.NewTask) error {
	existing, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, task := range tasks {
		if _, err := s.Create(ctx, task); err != nil {
			return fmt.Errorf("failed to seed task %q: %w", task.Title, err)
		}
	}
	return nil
}
