// Package migrations embeds the schema script and applies it with golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var files embed.FS

// Commands accepted by Run.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandVersion = "version"
)

// Run executes a migration command against databaseURL. steps limits up/down
// to that many migrations; 0 means all.
func Run(databaseURL, command string, steps int, log zerolog.Logger) error {
	switch command {
	case CommandUp, CommandDown, CommandVersion:
	default:
		return fmt.Errorf("invalid migration command: %s", command)
	}

	m, err := newMigrate(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case CommandUp:
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case CommandDown:
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	case CommandVersion:
		version, dirty, verErr := m.Version()
		if errors.Is(verErr, migrate.ErrNilVersion) {
			log.Info().Msg("No migrations have been applied yet")
			return nil
		}
		if verErr != nil {
			return fmt.Errorf("failed to get version: %w", verErr)
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current migration version")
		return nil
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("No migration changes to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Info().Str("command", command).Msg("Migration completed successfully")
	return nil
}

func newMigrate(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, driverURL(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrate: %w", err)
	}
	return m, nil
}

// driverURL rewrites postgres:// URLs to the scheme registered by the pgx v5 driver.
func driverURL(databaseURL string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}
