package models

// Team represents a team tasks can be tagged with.
// Task.Team refers to Team.Name as a plain string; nothing enforces it.
type Team struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	ColorClass string `json:"colorClass"`
}

// NewTeam is a validated team create input.
type NewTeam struct {
	Name       string
	ColorClass string
}

// DefaultTeams are seeded into an empty team store at startup.
var DefaultTeams = []NewTeam{
	{Name: "Core View", ColorClass: "team-blue"},
	{Name: "Fiscal View", ColorClass: "team-orange"},
	{Name: "UX Design", ColorClass: "team-teal"},
	{Name: "Desenvolvimento", ColorClass: "team-purple"},
	{Name: "QA Testing", ColorClass: "team-pink"},
}
