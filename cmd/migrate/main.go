package main

import (
	"flag"
	"log"

	"github.com/piresc/nebengjek-fare/internal/pkg/config"
	"github.com/piresc/nebengjek-fare/internal/pkg/database"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/fare.env", "path to the env config file")
	dir := flag.String("dir", "migrations", "directory holding the migration files")
	direction := flag.String("direction", string(database.MigrateUp), "up or down")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	appLogger, err := logger.InitAppLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	if err := database.RunMigrations(configs.Database, *dir, database.MigrationDirection(*direction)); err != nil {
		logger.Fatal("Migration failed", logger.Err(err))
	}
}
