// Package board partitions tasks into the fixed status columns of the kanban
// board and decorates each task with what a card needs to display.
package board

import (
	"time"

	"KanbanWebService/deadline"
	"KanbanWebService/models"
)

// DefaultColorClass is used for tasks whose team is not in the team store.
const DefaultColorClass = "team-blue"

const (
	doneBadge     = "Concluído"
	criticalBadge = "Crítico"
)

type columnDef struct {
	status       models.Status
	title        string
	emptyMessage string
}

var columns = []columnDef{
	{models.StatusPending, "PENDENTES", "Nenhuma tarefa"},
	{models.StatusInProgress, "EM ANDAMENTO", "Nenhuma tarefa"},
	{models.StatusInReview, "EM ANÁLISE/APROVAÇÃO", "Nenhuma tarefa em análise"},
	{models.StatusPaused, "PAUSADO/COM IMPEDIMENTO", "Nenhuma tarefa pausada"},
	{models.StatusDone, "CONCLUÍDAS", "Nenhuma tarefa"},
}

// Board is the grouped view of every task.
type Board struct {
	Date    string   `json:"date"`
	Columns []Column `json:"columns"`
	// Hidden counts tasks whose status matches no column. They are not shown.
	Hidden int `json:"hidden"`
}

type Column struct {
	Status       models.Status `json:"status"`
	Title        string        `json:"title"`
	Count        int           `json:"count"`
	EmptyMessage string        `json:"emptyMessage"`
	Cards        []Card        `json:"cards"`
}

type Card struct {
	Task          models.Task      `json:"task"`
	Urgency       deadline.Urgency `json:"urgency"`
	DaysLeft      *int             `json:"daysLeft"`
	DeadlineLabel string           `json:"deadlineLabel"`
	ColorClass    string           `json:"colorClass"`
	Badge         string           `json:"badge"`
	Done          bool             `json:"done"`
}

// Build groups tasks by status in the order given. now and loc drive the
// urgency tiers and the deadline labels.
func Build(tasks []models.Task, teams []models.Team, now time.Time, loc *time.Location) Board {
	if loc == nil {
		loc = time.UTC
	}

	colors := make(map[string]string, len(teams))
	for _, team := range teams {
		if _, ok := colors[team.Name]; !ok {
			colors[team.Name] = team.ColorClass
		}
	}

	index := make(map[models.Status]int, len(columns))
	b := Board{
		Date:    now.In(loc).Format(deadline.DateLayout),
		Columns: make([]Column, len(columns)),
	}
	for i, def := range columns {
		index[def.status] = i
		b.Columns[i] = Column{
			Status:       def.status,
			Title:        def.title,
			EmptyMessage: def.emptyMessage,
			Cards:        make([]Card, 0),
		}
	}

	for _, task := range tasks {
		i, ok := index[task.Status]
		if !ok {
			b.Hidden++
			continue
		}
		b.Columns[i].Cards = append(b.Columns[i].Cards, newCard(task, colors, now, loc))
		b.Columns[i].Count++
	}
	return b
}

func newCard(task models.Task, colors map[string]string, now time.Time, loc *time.Location) Card {
	card := Card{
		Task:          task,
		Urgency:       deadline.Classify(task.Deadline, now),
		DeadlineLabel: deadline.Label(task.Deadline, now, loc),
		ColorClass:    DefaultColorClass,
		Badge:         task.Team,
		Done:          task.Status == models.StatusDone,
	}
	if days, ok := deadline.DaysUntil(task.Deadline, now); ok {
		card.DaysLeft = &days
	}
	if color, ok := colors[task.Team]; ok && color != "" {
		card.ColorClass = color
	}
	switch {
	case card.Done:
		card.Badge = doneBadge
	case card.Urgency == deadline.Critical:
		card.Badge = criticalBadge
	}
	return card
}
