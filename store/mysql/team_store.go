package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"KanbanWebService/models"
	"KanbanWebService/store"
)

type TeamStore struct {
	db *sql.DB
}

func NewTeamStore(db *sql.DB) *TeamStore {
	return &TeamStore{db: db}
}

func (ts *TeamStore) List(ctx context.Context) ([]models.Team, error) {
	query, args, err := psql.Select("id", "name", "color_class").From("teams").OrderBy("seq").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	rows, err := ts.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.Id, &team.Name, &team.ColorClass); err != nil {
			return nil, fmt.Errorf("failed to scan row into Team struct: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return teams, nil
}

func (ts *TeamStore) Get(ctx context.Context, id string) (models.Team, error) {
	query, args, err := psql.Select("id", "name", "color_class").From("teams").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to build query: %w", err)
	}
	var team models.Team
	err = ts.db.QueryRowContext(ctx, query, args...).Scan(&team.Id, &team.Name, &team.ColorClass)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Team{}, fmt.Errorf("team %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to scan row into Team struct: %w", err)
	}
	return team, nil
}

func (ts *TeamStore) Create(ctx context.Context, in models.NewTeam) (models.Team, error) {
	team := models.Team{Id: uuid.NewString(), Name: in.Name, ColorClass: in.ColorClass}

	query, args, err := psql.Insert("teams").Columns("id", "name", "color_class").
		Values(team.Id, team.Name, team.ColorClass).ToSql()
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to build insert: %w", err)
	}
	if _, err := ts.db.ExecContext(ctx, query, args...); err != nil {
		return models.Team{}, fmt.Errorf("failed to insert team: %w", err)
	}
	return team, nil
}
