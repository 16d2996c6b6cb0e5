package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"KanbanWebService/models"
	"KanbanWebService/store"
)

var taskColumns = []string{
	"id", "title", "description", "os_number", "deadline",
	"estimated_hours", "team", "status", "created_at", "updated_at",
}

type TaskStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewTaskStore(db *sql.DB) *TaskStore {
	return NewTaskStoreWithClock(db, time.Now)
}

func NewTaskStoreWithClock(db *sql.DB, now func() time.Time) *TaskStore {
	return &TaskStore{db: db, now: now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task           models.Task
		status         string
		description    sql.NullString
		estimatedHours sql.NullString
		deadline       sql.NullTime
	)
	err := row.Scan(&task.Id, &task.Title, &description, &task.OSNumber, &deadline,
		&estimatedHours, &task.Team, &status, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return models.Task{}, err
	}
	task.Status = models.Status(status)
	if description.Valid {
		task.Description = &description.String
	}
	if estimatedHours.Valid {
		task.EstimatedHours = &estimatedHours.String
	}
	if deadline.Valid {
		d := deadline.Time.UTC()
		task.Deadline = &d
	}
	task.CreatedAt = task.CreatedAt.UTC()
	task.UpdatedAt = task.UpdatedAt.UTC()
	return task, nil
}

func (ts *TaskStore) List(ctx context.Context) ([]models.Task, error) {
	query, args, err := psql.Select(taskColumns...).From("tasks").OrderBy("seq").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	rows, err := ts.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row into Task struct: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return tasks, nil
}

func (ts *TaskStore) Get(ctx context.Context, id string) (models.Task, error) {
	query, args, err := psql.Select(taskColumns...).From("tasks").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to build query: %w", err)
	}
	task, err := scanTask(ts.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("task %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to scan row into Task struct: %w", err)
	}
	return task, nil
}

// Create inserts a task. Timestamps are truncated to the microsecond
// precision of the DATETIME(6) columns so the returned task equals what a
// later Get reads back.
func (ts *TaskStore) Create(ctx context.Context, in models.NewTask) (models.Task, error) {
	now := ts.now().UTC().Truncate(time.Microsecond)
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
	task.Deadline = truncateMicro(task.Deadline)

	query, args, err := psql.Insert("tasks").Columns(taskColumns...).Values(
		task.Id, task.Title, task.Description, task.OSNumber, task.Deadline,
		task.EstimatedHours, task.Team, string(task.Status), task.CreatedAt, task.UpdatedAt,
	).ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to build insert: %w", err)
	}
	if _, err := ts.db.ExecContext(ctx, query, args...); err != nil {
		return models.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}
	return task, nil
}

func (ts *TaskStore) Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	tx, err := ts.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := psql.Select(taskColumns...).From("tasks").
		Where(sq.Eq{"id": id}).Suffix("FOR UPDATE").ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to build query: %w", err)
	}
	existing, err := scanTask(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("task %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to scan row into Task struct: %w", err)
	}

	updated := patch.Apply(existing)
	updated.Deadline = truncateMicro(updated.Deadline)
	updated.UpdatedAt = ts.now().UTC().Truncate(time.Microsecond)
	if updated.UpdatedAt.Before(existing.UpdatedAt) {
		updated.UpdatedAt = existing.UpdatedAt
	}

	query, args, err = psql.Update("tasks").SetMap(map[string]any{
		"title":           updated.Title,
		"description":     updated.Description,
		"os_number":       updated.OSNumber,
		"deadline":        updated.Deadline,
		"estimated_hours": updated.EstimatedHours,
		"team":            updated.Team,
		"status":          string(updated.Status),
		"updated_at":      updated.UpdatedAt,
	}).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to build update: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return models.Task{}, fmt.Errorf("failed to execute SQL statement: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return models.Task{}, fmt.Errorf("failed to commit update: %w", err)
	}
	return updated, nil
}

func (ts *TaskStore) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := psql.Delete("tasks").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete: %w", err)
	}
	res, err := ts.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to execute SQL statement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

func truncateMicro(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	tt := t.UTC().Truncate(time.Microsecond)
	return &tt
}
