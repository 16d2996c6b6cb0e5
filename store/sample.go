package store

import (
	"time"

	"KanbanWebService/models"
)

// SampleTasks returns the demo board content. Deadlines are the last
// microsecond of the day, UTC.
func SampleTasks() []models.NewTask {
	eod := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Microsecond), time.UTC)
		return &t
	}
	str := func(s string) *string { return &s }

	return []models.NewTask{
		{Title: "Plentário", Description: str("2 horas processo realizado"), OSNumber: "OS - 1394", Deadline: eod(2025, time.August, 26), EstimatedHours: str("2"), Team: "Core View", Status: models.StatusPending},
		{Title: "Incluir documento", Description: str("Incluir DOC e disretinha quando não veio no arquivo"), OSNumber: "OS - 1393", Deadline: eod(2024, time.September, 8), EstimatedHours: str("4"), Team: "Fiscal View", Status: models.StatusPending},
		{Title: "Estoque - Pós reunião", Description: str("Adicionar filtros das reuniões do problema"), OSNumber: "OS - 1395", Deadline: eod(2025, time.September, 15), EstimatedHours: str("6"), Team: "UX Design", Status: models.StatusPending},
		{Title: "E-sfinge v1", Description: str("Aceder ao problema no sistema com feedback dos utilizadores"), OSNumber: "OS - 0003", Deadline: eod(2024, time.September, 2), EstimatedHours: str("8"), Team: "Desenvolvimento", Status: models.StatusPending},
		{Title: "Assinador do PWA", Description: str("Recuperar trabalhar a fase da atividade desenvolvida"), OSNumber: "OS - 1338", Deadline: eod(2025, time.September, 30), EstimatedHours: str("18"), Team: "Desenvolvimento", Status: models.StatusInProgress},
		{Title: "Menu TCE VIRTUAL", Description: str("Criado de via paralelo que deixa disparar o que"), OSNumber: "OS - 0002", Deadline: eod(2025, time.August, 26), EstimatedHours: str("12"), Team: "Core View", Status: models.StatusDone},
		{Title: "Estoque", Description: str("Criar exemplo com planos off-SCJ"), OSNumber: "OS - 1250", Deadline: eod(2025, time.September, 23), EstimatedHours: str("10"), Team: "Fiscal View", Status: models.StatusDone},
		{Title: "Comunicação", Description: str("Descrição incompleta"), OSNumber: "OS - 1365", EstimatedHours: str("5"), Team: "UX Design", Status: models.StatusDone},
	}
}
