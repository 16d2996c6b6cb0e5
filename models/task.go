// Package models contains the data models for the application to be used in request handling.
package models

import (
	"encoding/json"
	"time"
)

// Status is the lifecycle state of a task. Each status is one column of the board.
type Status string

const (
	StatusPending    Status = "pendentes"
	StatusInProgress Status = "em-andamento"
	StatusInReview   Status = "em-analise"
	StatusPaused     Status = "pausado"
	StatusDone       Status = "concluidas"
)

// Statuses lists every valid status in board column order.
var Statuses = []Status{
	StatusPending,
	StatusInProgress,
	StatusInReview,
	StatusPaused,
	StatusDone,
}

// Valid reports whether s is one of the five known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Task represents a task in the system.
// Task has the following properties:
// - Id: The unique identifier of the task, assigned by the store.
// - Title: The title of the task.
// - Description: An optional description.
// - OSNumber: The external work-order reference.
// - Deadline: An optional deadline, always in UTC.
// - EstimatedHours: An optional string-encoded number of hours.
// - Team: The name of the team the task is tagged with.
// - Status: The board column the task is in.
type Task struct {
	Id             string     `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	OSNumber       string     `json:"osNumber"`
	Deadline       *time.Time `json:"deadline"`
	EstimatedHours *string    `json:"estimatedHours"`
	Team           string     `json:"team"`
	Status         Status     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Clone returns a copy of the task that shares no memory with t.
func (t Task) Clone() Task {
	out := t
	out.Description = clonePtr(t.Description)
	out.EstimatedHours = clonePtr(t.EstimatedHours)
	out.Deadline = clonePtr(t.Deadline)
	return out
}

// NewTask is a validated create input. The store assigns id and timestamps.
type NewTask struct {
	Title          string
	Description    *string
	OSNumber       string
	Deadline       *time.Time
	EstimatedHours *string
	Team           string
	Status         Status
}

// TaskPatch is a validated partial update. Nil pointers and unset optionals
// leave the stored value untouched.
type TaskPatch struct {
	Title          *string
	OSNumber       *string
	Team           *string
	Status         *Status
	Description    Optional[string]
	EstimatedHours Optional[string]
	Deadline       Optional[time.Time]
}

// Apply merges the patch over t and returns the result. Timestamps are left to the caller.
func (p TaskPatch) Apply(t Task) Task {
	out := t.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.OSNumber != nil {
		out.OSNumber = *p.OSNumber
	}
	if p.Team != nil {
		out.Team = *p.Team
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Description.Set {
		out.Description = clonePtr(p.Description.Value)
	}
	if p.EstimatedHours.Set {
		out.EstimatedHours = clonePtr(p.EstimatedHours.Value)
	}
	if p.Deadline.Set {
		out.Deadline = clonePtr(p.Deadline.Value)
	}
	return out
}

// Optional holds a field of a partial update that can be absent, explicitly
// null, or set. Value is nil for null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional set to v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON marks the field as present. encoding/json calls it for null too.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
