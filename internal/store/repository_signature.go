package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/models"
)

// signatureRepository reads the captain's signature records from the
// "digital_signatures" table.
type signatureRepository struct {
	*DB
	logger *logger.Logger
}

// NewSignatureRepository constructs a [SignatureRepository].
func NewSignatureRepository(db *DB, logger *logger.Logger) SignatureRepository {
	logger.Debug().Msg("creating signature repository")
	return &signatureRepository{
		DB:     db,
		logger: logger,
	}
}

// GetActiveSignature returns the most recently uploaded active signature.
// Returns [ErrSignatureNotFound] when none is active; the renderer falls
// back to an unsigned document in that case.
func (s *signatureRepository) GetActiveSignature(ctx context.Context) (models.DigitalSignature, error) {
	log := logger.FromContext(ctx)

	var signature models.DigitalSignature

	err := s.DB.QueryRowContext(ctx, getActiveSignature).Scan(
		&signature.SignatureID,
		&signature.OfficialID,
		&signature.File,
		&signature.Active,
		&signature.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DigitalSignature{}, ErrSignatureNotFound
		}

		log.Err(err).
			Str("func", "signatureRepository.GetActiveSignature").
			Msg("failed to query active signature")
		return models.DigitalSignature{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return signature, nil
}
