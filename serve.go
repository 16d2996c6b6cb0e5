package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"KanbanWebService/config"
	"KanbanWebService/handlers"
	"KanbanWebService/logging"
	"KanbanWebService/middleware"
	"KanbanWebService/models"
	"KanbanWebService/store"
	"KanbanWebService/store/memory"
	"KanbanWebService/store/mysql"
	"KanbanWebService/validation"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config `FILE`, environment variables override it",
				EnvVars: []string{"KANBAN_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv `FILE` loaded into the environment",
				Value: ".env",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("env-file"), c.String("config"))
			if err != nil {
				return err
			}
			return serve(c.Context, cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	log, err := logging.New(cfg.Log, os.Stdout)
	if err != nil {
		return err
	}
	loc, err := cfg.Board.Location()
	if err != nil {
		return err
	}

	tasks, teams, closeStore, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.SeedTeams(ctx, teams, models.DefaultTeams); err != nil {
		return err
	}
	if cfg.Store.SeedSamples {
		if err := store.SeedTasks(ctx, tasks, store.SampleTasks()); err != nil {
			return err
		}
	}

	v, err := validation.New(loc)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	h := handlers.New(tasks, teams, v, log, loc)
	server := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: h.Routes(handlers.RouterOptions{
			Limiter:  middleware.NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
			Metrics:  metrics,
			Gatherer: reg,
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":  cfg.HTTP.Addr,
			"store": cfg.Store.Driver,
		}).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-stop:
		log.Info("shut down signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Info("shut down gracefully")
	return nil
}

// openStores returns the stores for the configured driver and a func that
// releases them.
func openStores(ctx context.Context, cfg config.Config) (store.TaskStore, store.TeamStore, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMySQL:
		openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := mysql.Open(openCtx, mysql.Config{
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Addr:     cfg.DB.Address,
			DBName:   cfg.DB.Name,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		if err := mysql.Migrate(openCtx, db); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		return mysql.NewTaskStore(db), mysql.NewTeamStore(db), closer(db), nil
	default:
		return memory.NewTaskStore(), memory.NewTeamStore(), func() {}, nil
	}
}

func closer(db *sql.DB) func() {
	return func() { _ = db.Close() }
}
