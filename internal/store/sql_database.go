package store

import (
	"database/sql"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/migrations"
)

// DB wraps the shared *sql.DB handle together with the error classifier and
// a fallback logger. All repositories embed or reference it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
