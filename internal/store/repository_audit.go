package store

import (
	"context"
	"fmt"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/models"
)

// auditRepository appends to and reads the append-only "audit_logs" table.
// There is deliberately no update or delete path.
type auditRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuditRepository constructs an [AuditRepository].
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		DB:     db,
		logger: logger,
	}
}

// InsertAuditEntry appends one row to the trail. A transient failure (lost
// connection, deadlock rollback) is retried once before the entry is given
// up on; the trail is best effort and must not wedge its writer.
func (a *auditRepository) InsertAuditEntry(ctx context.Context, entry models.AuditLogEntry) error {
	log := logger.FromContext(ctx)

	err := a.exec(ctx, entry)
	if err != nil && a.DB.errorClassificator.Classify(err) == Retryable {
		log.Warn().
			Str("func", "auditRepository.InsertAuditEntry").
			Str("action", entry.Action).
			Msg("retrying audit append after transient database error")
		err = a.exec(ctx, entry)
	}

	if err != nil {
		log.Err(err).
			Str("func", "auditRepository.InsertAuditEntry").
			Str("action", entry.Action).
			Str("table_affected", entry.TableAffected).
			Msg("failed to append audit entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (a *auditRepository) exec(ctx context.Context, entry models.AuditLogEntry) error {
	_, err := a.DB.ExecContext(ctx, insertAuditEntry,
		entry.ActorID,
		entry.ActorType,
		entry.Action,
		entry.TableAffected,
		entry.RecordID,
		entry.OldValue,
		entry.NewValue,
		entry.IPAddress,
	)
	return err
}

// ListAuditEntries returns the trail newest first, paged.
func (a *auditRepository) ListAuditEntries(ctx context.Context, limit, offset uint64) ([]models.AuditLogEntry, error) {
	log := logger.FromContext(ctx)

	if limit == 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	rows, err := a.DB.QueryContext(ctx, listAuditEntriesQuery, limit, offset)
	if err != nil {
		log.Err(err).
			Str("func", "auditRepository.ListAuditEntries").
			Msg("failed to execute audit listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.AuditLogEntry, 0, defaultListLimit)

	for rows.Next() {
		var entry models.AuditLogEntry

		scanErr := rows.Scan(
			&entry.AuditID,
			&entry.ActorID,
			&entry.ActorType,
			&entry.Action,
			&entry.TableAffected,
			&entry.RecordID,
			&entry.OldValue,
			&entry.NewValue,
			&entry.IPAddress,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "auditRepository.ListAuditEntries").
				Msg("failed to scan audit row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "auditRepository.ListAuditEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
