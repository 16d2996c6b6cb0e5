// Package mysql implements the task and team stores on MySQL. Every store
// operation runs as a single statement or a single transaction.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
)

// Config holds the connection settings.
type Config struct {
	User     string
	Password string
	Addr     string
	DBName   string
}

const schemaTasks = `CREATE TABLE IF NOT EXISTS tasks (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	seq BIGINT NOT NULL AUTO_INCREMENT UNIQUE,
	title TEXT NOT NULL,
	description TEXT NULL,
	os_number VARCHAR(255) NOT NULL,
	deadline DATETIME(6) NULL,
	estimated_hours VARCHAR(64) NULL,
	team VARCHAR(255) NOT NULL,
	status VARCHAR(32) NOT NULL DEFAULT 'pendentes',
	created_at DATETIME(6) NOT NULL,
	updated_at DATETIME(6) NOT NULL
)`

const schemaTeams = `CREATE TABLE IF NOT EXISTS teams (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	seq BIGINT NOT NULL AUTO_INCREMENT UNIQUE,
	name VARCHAR(255) NOT NULL,
	color_class VARCHAR(64) NOT NULL
)`

// Open connects to MySQL and verifies the connection.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	dsn := mysql.NewConfig()
	dsn.User = cfg.User
	dsn.Passwd = cfg.Password
	dsn.Net = "tcp"
	dsn.Addr = cfg.Addr
	dsn.DBName = cfg.DBName
	dsn.AllowNativePasswords = true
	dsn.ParseTime = true
	dsn.Loc = time.UTC

	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{schemaTasks, schemaTeams} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}
	return nil
}

// psql is the statement builder; MySQL uses ? placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)
