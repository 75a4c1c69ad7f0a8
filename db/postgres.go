package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/sooquk/sooquk-dashboard/internal/configs"
)

// connectionURL escapes credentials so passwords may contain URL delimiters.
func connectionURL(cfg *configs.PostgreConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: "sslmode=disable&timezone=UTC",
	}
	return u.String()
}

func Connect(ctx context.Context, cfg *configs.PostgreConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate applies every pending migration found at cfg.Path.
func Migrate(pg *configs.PostgreConfig, cfg *configs.MigrationConfig) error {
	m, err := migrate.New(cfg.Path, connectionURL(pg))
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to execute database migrations: %w", err)
	}
	return nil
}
