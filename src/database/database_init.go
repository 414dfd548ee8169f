package database

import (
	appbuilder "sos-api/pkg/app_builder"
	"sos-api/pkg/logger"
	"sos-api/pkg/utilities"
)

type DatabaseConfig interface {
	appbuilder.AppConfig
	GetDatabaseConnectionString() string
}

func ConnectToDatabase[T utilities.JsonConfigObj[U], U DatabaseConfig](a *appbuilder.AppBuilder[T, U]) {
	a.Logger.Info("Establishing connection to database...")
	InitializeDatabaseConnection(a.Config.GetDatabaseConnectionString())
	a.Logger.Info("Database connection established successfully.")
}

func RunMigrations(migrateDatabase bool) {
	if !migrateDatabase {
		return
	}

	migrationLogger := logger.Default()
	migrationLogger.Info("Running migrations for tables... ")
	if err := AutoMigrate(GetDatabaseConnection()); err != nil {
		migrationLogger.Fatal(err, "Migrating database failed")
	}
	migrationLogger.Info("All tables created (or already exist).")
}
