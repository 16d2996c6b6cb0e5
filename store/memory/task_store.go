// Package memory implements the task and team stores on in-process maps.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"KanbanWebService/models"
	"KanbanWebService/store"
)

// TaskStore keeps tasks in a map guarded by a single lock. order records
// insertion order for List.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[string]models.Task
	order []string
	now   func() time.Time
}

func NewTaskStore() *TaskStore {
	return NewTaskStoreWithClock(time.Now)
}

// NewTaskStoreWithClock lets tests pin the timestamps the store assigns.
func NewTaskStoreWithClock(now func() time.Time) *TaskStore {
	return &TaskStore{
		tasks: make(map[string]models.Task),
		now:   now,
	}
}

func (ts *TaskStore) List(_ context.Context) ([]models.Task, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	tasks := make([]models.Task, 0, len(ts.order))
	for _, id := range ts.order {
		tasks = append(tasks, ts.tasks[id].Clone())
	}
	return tasks, nil
}

func (ts *TaskStore) Get(_ context.Context, id string) (models.Task, error) {
	ts.mu.RLock()
	task, ok := ts.tasks[id]
	ts.mu.RUnlock()

	if !ok {
		return models.Task{}, fmt.Errorf("task %s: %w", id, store.ErrNotFound)
	}
	return task.Clone(), nil
}

func (ts *TaskStore) Create(_ context.Context, in models.NewTask) (models.Task, error) {
	now := ts.now().UTC()
	task := models.Task{
		Id:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		OSNumber:       in.OSNumber,
		Deadline:       in.Deadline,
		EstimatedHours: in.EstimatedHours,
		Team:           in.Team,
		Status:         in.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}.Clone()
	if task.Status == "" {
		task.Status = models.StatusPending
	}

	ts.mu.Lock()
	ts.tasks[task.Id] = task
	ts.order = append(ts.order, task.Id)
	ts.mu.Unlock()

	return task.Clone(), nil
}

func (ts *TaskStore) Update(_ context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	existing, ok := ts.tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("task %s: %w", id, store.ErrNotFound)
	}

	updated := patch.Apply(existing)
	updated.UpdatedAt = ts.now().UTC()
	// a clock step backwards must not break updatedAt >= createdAt
	if updated.UpdatedAt.Before(existing.UpdatedAt) {
		updated.UpdatedAt = existing.UpdatedAt
	}
	ts.tasks[id] = updated

	return updated.Clone(), nil
}

func (ts *TaskStore) Delete(_ context.Context, id string) (bool, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, ok := ts.tasks[id]; !ok {
		return false, nil
	}
	delete(ts.tasks, id)
	for i, orderedID := range ts.order {
		if orderedID == id {
			ts.order = append(ts.order[:i], ts.order[i+1:]...)
			break
		}
	}
	return true, nil
}
