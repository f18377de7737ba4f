package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// DefaultMigrationsURL is where migrations live relative to the working directory
const DefaultMigrationsURL = "file://migrations"

// RetryPolicy controls how Connect waits for the database to come up
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetry waits up to a minute, enough for a database container to start
var DefaultRetry = RetryPolicy{Attempts: 30, Delay: 2 * time.Second}

// Connect opens a PostgreSQL connection and pings it, retrying per policy
func Connect(dsn string, policy RetryPolicy, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < policy.Attempts; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(policy.Delay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(policy.Delay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", policy.Attempts, err)
}

// Direction selects which way migrations run
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts "up" or "down"
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown migration direction %q, expected up or down", s)
}

// Migrate applies (up) or rolls back (down) all migrations from sourceURL
func Migrate(db *sql.DB, sourceURL string, dir Direction, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", dir)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply", zap.String("direction", string(dir)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations %s: %w", dir, err)
	}

	logger.Info("Migrations applied successfully", zap.String("direction", string(dir)))
	return nil
}
