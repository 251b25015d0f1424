// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package service

import (
	"context"
	"fmt"

	"github.com/ncastillo/eserbisyo/internal/crypto"
	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/models"
)

// residentService exposes resident records to officials. The repository
// hands rows back as stored, so the field-encrypted contact number is
// decrypted here before the record leaves the service layer.
type residentService struct {
	residentRepository store.ResidentRepository
	crypto             crypto.Service
	logger             *logger.Logger
}

// NewResidentService constructs a [ResidentService].
func NewResidentService(residentRepository store.ResidentRepository, cryptoService crypto.Service, logger *logger.Logger) ResidentService {
	return &residentService{
		residentRepository: residentRepository,
		crypto:             cryptoService,
		logger:             logger,
	}
}

// GetResident implements [ResidentService].
func (r *residentService) GetResident(ctx context.Context, actor models.Actor, residentID int64) (models.Resident, error) {
	if !isOfficial(actor) {
		return models.Resident{}, ErrForbidden
	}

	resident, err := r.residentRepository.GetResident(ctx, residentID)
	if err != nil {
		return models.Resident{}, fmt.Errorf("loading resident: %w", err)
	}

	contactNo, err := r.crypto.DecryptField(resident.ContactNo)
	if err != nil {
		return models.Resident{}, fmt.Errorf("decrypting contact number: %w", err)
	}
	resident.ContactNo = contactNo

	return resident, nil
}
