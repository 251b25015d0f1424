package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/models"
)

// documentTypeRepository reads the document-type catalogue from the
// "document_types" table.
type documentTypeRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentTypeRepository constructs a [DocumentTypeRepository].
func NewDocumentTypeRepository(db *DB, logger *logger.Logger) DocumentTypeRepository {
	logger.Debug().Msg("creating document type repository")
	return &documentTypeRepository{
		DB:     db,
		logger: logger,
	}
}

// GetDocumentType retrieves one catalogue entry by ID.
func (d *documentTypeRepository) GetDocumentType(ctx context.Context, documentTypeID int64) (models.DocumentType, error) {
	log := logger.FromContext(ctx)

	var docType models.DocumentType

	err := d.DB.QueryRowContext(ctx, getDocumentType, documentTypeID).Scan(
		&docType.DocumentTypeID,
		&docType.Name,
		&docType.BaseFee,
		&docType.Requirements,
		&docType.Layout,
		&docType.TemplateFile,
		&docType.Available,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DocumentType{}, ErrDocumentTypeNotFound
		}

		log.Err(err).
			Str("func", "documentTypeRepository.GetDocumentType").
			Int64("document_type_id", documentTypeID).
			Msg("failed to query document type")
		return models.DocumentType{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return docType, nil
}

// ListDocumentTypes returns the catalogue ordered by name. With
// onlyAvailable set, entries residents cannot request are filtered out.
func (d *documentTypeRepository) ListDocumentTypes(ctx context.Context, onlyAvailable bool) ([]models.DocumentType, error) {
	log := logger.FromContext(ctx)

	query := listAllDocumentTypes
	if onlyAvailable {
		query = listAvailableDocumentTypes
	}

	rows, err := d.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).
			Str("func", "documentTypeRepository.ListDocumentTypes").
			Msg("failed to execute catalogue query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.DocumentType, 0, 16)

	for rows.Next() {
		var docType models.DocumentType

		scanErr := rows.Scan(
			&docType.DocumentTypeID,
			&docType.Name,
			&docType.BaseFee,
			&docType.Requirements,
			&docType.Layout,
			&docType.TemplateFile,
			&docType.Available,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentTypeRepository.ListDocumentTypes").
				Msg("failed to scan document type row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, docType)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "documentTypeRepository.ListDocumentTypes").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
