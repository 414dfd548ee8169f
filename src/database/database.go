package database

import (
	"strings"
	"sync"
	"time"

	"sos-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	db     *gorm.DB
	dbOnce sync.Once
)

// InitializeDatabaseConnection opens the shared connection once. A failure is fatal.
func InitializeDatabaseConnection(connectionString string) {
	dbOnce.Do(func() {
		conn, err := Open(connectionString)
		if err != nil {
			logger.Default().Fatal(err, "Cannot establish database connection")
		}
		db = conn
	})
}

func GetDatabaseConnection() *gorm.DB {
	return db
}

// Open picks the postgres driver for postgres URLs and key=value DSNs, sqlite otherwise.
func Open(connectionString string) (*gorm.DB, error) {
	return gorm.Open(dialector(connectionString), &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
}

func dialector(connectionString string) gorm.Dialector {
	if isPostgres(connectionString) {
		return postgres.Open(connectionString)
	}
	return sqlite.Open(connectionString)
}

func isPostgres(connectionString string) bool {
	return strings.HasPrefix(connectionString, "postgres://") ||
		strings.HasPrefix(connectionString, "postgresql://") ||
		strings.Contains(connectionString, "host=")
}

type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, v ...interface{}) {
	w.log.Warnf(format, v...)
}

func newGormLogger() gormlogger.Interface {
	return gormlogger.New(
		gormWriter{log: logger.Default().WithField("component", "gorm")},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
