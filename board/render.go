package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"KanbanWebService/deadline"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	columnStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).MarginBottom(1)
)

const minColumnWidth = 18

// Render draws the board as side-by-side columns fitting in width cells.
func Render(b Board, width int) string {
	colWidth := minColumnWidth
	if n := len(b.Columns); n > 0 && width/n-4 > minColumnWidth {
		colWidth = width/n - 4
	}

	rendered := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		rendered = append(rendered, renderColumn(col, colWidth))
	}

	header := headerStyle.Render("TAREFAS EM ANDAMENTO  " + mutedStyle.Render(b.Date))
	out := lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	if b.Hidden > 0 {
		out += "\n" + mutedStyle.Render(fmt.Sprintf("%d tarefa(s) com status desconhecido", b.Hidden))
	}
	return out
}

func renderColumn(col Column, width int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(col.Title))
	sb.WriteString("\n")
	noun := "tarefas"
	if col.Count == 1 {
		noun = "tarefa"
	}
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("%d %s", col.Count, noun)))
	sb.WriteString("\n\n")

	if len(col.Cards) == 0 {
		sb.WriteString(mutedStyle.Render(col.EmptyMessage))
	}
	for _, card := range col.Cards {
		sb.WriteString(renderCard(card, width-2))
		sb.WriteString("\n")
	}
	return columnStyle.Width(width).Render(sb.String())
}

func renderCard(card Card, width int) string {
	lines := []string{
		titleStyle.Render(card.Task.Title) + " " + mutedStyle.Render(card.Task.OSNumber),
	}
	if card.Task.Description != nil {
		lines = append(lines, mutedStyle.Render(*card.Task.Description))
	}

	due := card.DeadlineLabel
	if card.Task.Deadline != nil {
		due = "Prazo: " + due
	}
	switch {
	case card.Urgency == deadline.Critical:
		due = criticalStyle.Render(due)
	case card.Urgency == deadline.Warning:
		due = warningStyle.Render(due)
	}
	lines = append(lines, "["+card.Badge+"] "+due)

	if card.Task.EstimatedHours != nil {
		lines = append(lines, mutedStyle.Render(*card.Task.EstimatedHours+" horas"))
	}
	return cardStyle.Width(width).Render(strings.Join(lines, "\n"))
}
