// Package main provides the API to manage expenses and the account balance.
package main

import (
	"github.com/golang-migrate/migrate/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gastos-dev/gastos/cmd/httpserver"
	"github.com/gastos-dev/gastos/internal/middleware"
	"github.com/gastos-dev/gastos/pkg/configpkg"
	"github.com/gastos-dev/gastos/pkg/dbpkg"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	runDBMigration(logger, config.MigrationURL, config.DBSource)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("EXPENSE LEDGER API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

func runDBMigration(logger zerolog.Logger, migrationURL, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create migrate instance")
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		logger.Fatal().Err(err).Msg("failed to run migrate up")
	}

	logger.Info().Msg("db migrated successfully")
}
