package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/models"
)

// officialRepository reads barangay official accounts from the "officials"
// table.
type officialRepository struct {
	*DB
	logger *logger.Logger
}

// NewOfficialRepository constructs an [OfficialRepository].
func NewOfficialRepository(db *DB, logger *logger.Logger) OfficialRepository {
	logger.Debug().Msg("creating official repository")
	return &officialRepository{
		DB:     db,
		logger: logger,
	}
}

// FindOfficialByUsername retrieves an official account by its login name.
// Returns [ErrOfficialNotFound] for unknown usernames; the caller must not
// leak which part of a credential pair was wrong.
func (o *officialRepository) FindOfficialByUsername(ctx context.Context, username string) (models.Official, error) {
	return o.getOne(ctx, "officialRepository.FindOfficialByUsername", findOfficialByUsername, username)
}

// GetOfficial retrieves an official by ID.
func (o *officialRepository) GetOfficial(ctx context.Context, officialID int64) (models.Official, error) {
	return o.getOne(ctx, "officialRepository.GetOfficial", getOfficialByID, officialID)
}

func (o *officialRepository) getOne(ctx context.Context, funcName, query string, arg any) (models.Official, error) {
	log := logger.FromContext(ctx)

	var official models.Official

	err := o.DB.QueryRowContext(ctx, query, arg).Scan(
		&official.OfficialID,
		&official.Username,
		&official.PasswordHash,
		&official.FullName,
		&official.Role,
		&official.Position,
		&official.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Official{}, ErrOfficialNotFound
		}

		log.Err(err).
			Str("func", funcName).
			Msg("failed to query official")
		return models.Official{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return official, nil
}

// residentRepository reads resident records. Encrypted columns are returned
// as stored; decryption is a service-layer concern.
type residentRepository struct {
	*DB
	logger *logger.Logger
}

// NewResidentRepository constructs a [ResidentRepository].
func NewResidentRepository(db *DB, logger *logger.Logger) ResidentRepository {
	logger.Debug().Msg("creating resident repository")
	return &residentRepository{
		DB:     db,
		logger: logger,
	}
}

// GetResident retrieves one resident by ID.
func (r *residentRepository) GetResident(ctx context.Context, residentID int64) (models.Resident, error) {
	log := logger.FromContext(ctx)

	var resident models.Resident

	err := r.DB.QueryRowContext(ctx, getResidentByID, residentID).Scan(
		&resident.ResidentID,
		&resident.FirstName,
		&resident.LastName,
		&resident.AddressStreet,
		&resident.ContactNo,
		&resident.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Resident{}, ErrResidentNotFound
		}

		log.Err(err).
			Str("func", "residentRepository.GetResident").
			Int64("resident_id", residentID).
			Msg("failed to query resident")
		return models.Resident{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resident, nil
}
