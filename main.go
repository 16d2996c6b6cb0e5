// KanbanWebService is a web service that keeps the tasks of a team kanban
// board and serves them grouped into status columns.
//
// It implements CRUD operations for tasks, keeps the list of teams used to
// color the cards, and builds the board view where every card carries its
// deadline urgency tier and label.
// Tasks are stored in memory or in a MySQL database, selected with STORE_DRIVER.
// A token bucket rate limiter (2 events per second, burst of 20 by default)
// protects the API against abuse.
// It also provides Prometheus metrics for monitoring and recording metrics.
//
// The following endpoints are available:
//
//  1. GET /tasks - List every task
//  2. POST /tasks - Create a new task
//  3. GET /tasks/{id} - Get a task by ID
//  4. PATCH /tasks/{id} - Update some fields of a task
//  5. DELETE /tasks/{id} - Delete a task
//  6. GET /teams - List the teams
//  7. POST /teams - Add a team
//  8. GET /teams/{id} - Get a team by ID
//  9. GET /board - The tasks grouped into the five status columns
//  10. GET /healthz - Liveness probe
//  11. GET /metrics - Display Prometheus metrics
//
// Run "kanban serve" to start the server and "kanban board" to print the board
// of a running server in the terminal.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "kanban",
		Usage: "team kanban board service",
		Commands: []*cli.Command{
			serveCommand(),
			boardCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("kanban failed")
	}
}
