package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"KanbanWebService/models"
	"KanbanWebService/store"
)

type TeamStore struct {
	mu    sync.RWMutex
	teams map[string]models.Team
	order []string
}

func NewTeamStore() *TeamStore {
	return &TeamStore{
		teams: make(map[string]models.Team),
	}
}

func (ts *TeamStore) List(_ context.Context) ([]models.Team, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	teams := make([]models.Team, 0, len(ts.order))
	for _, id := range ts.order {
		teams = append(teams, ts.teams[id])
	}
	return teams, nil
}

func (ts *TeamStore) Get(_ context.Context, id string) (models.Team, error) {
	ts.mu.RLock()
	team, ok := ts.teams[id]
	ts.mu.RUnlock()

	if !ok {
		return models.Team{}, fmt.Errorf("team %s: %w", id, store.ErrNotFound)
	}
	return team, nil
}

func (ts *TeamStore) Create(_ context.Context, in models.NewTeam) (models.Team, error) {
	team := models.Team{
		Id:         uuid.NewString(),
		Name:       in.Name,
		ColorClass: in.ColorClass,
	}

	ts.mu.Lock()
	ts.teams[team.Id] = team
	ts.order = append(ts.order, team.Id)
	ts.mu.Unlock()

	return team, nil
}
