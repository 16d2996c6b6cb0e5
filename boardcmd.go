package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"KanbanWebService/board"
)

func boardCommand() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "print the board of a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "base `URL` of the server",
				Value:   "http://localhost:8080",
				EnvVars: []string{"KANBAN_ADDR"},
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "terminal width in cells",
				Value: 160,
			},
		},
		Action: func(c *cli.Context) error {
			client := &http.Client{Timeout: 10 * time.Second}
			b, err := fetchBoard(c.Context, client, c.String("addr"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, board.Render(b, c.Int("width")))
			return nil
		},
	}
}

func fetchBoard(ctx context.Context, client *http.Client, addr string) (board.Board, error) {
	var b board.Board

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(addr, "/")+"/board", nil)
	if err != nil {
		return b, fmt.Errorf("failed to build board request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return b, fmt.Errorf("failed to fetch board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return b, fmt.Errorf("failed to fetch board: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return b, fmt.Errorf("failed to decode board: %w", err)
	}
	return b, nil
}
