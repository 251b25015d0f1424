// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package service

import (
	"context"
	"strings"
	"time"

	"github.com/ncastillo/eserbisyo/internal/config"
	"github.com/ncastillo/eserbisyo/internal/crypto"
	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/internal/utils"
	"github.com/ncastillo/eserbisyo/models"
)

// authService is the concrete implementation of AuthService.
// It verifies official credentials against bcrypt hashes and owns the JWT
// token lifecycle used by every authenticated engine operation.
type authService struct {
	// officialRepository is the data-access layer for staff accounts.
	officialRepository store.OfficialRepository

	// crypto provides the bcrypt comparison.
	crypto crypto.Service

	// audit receives a LOGIN entry for every successful sign-in.
	audit AuditRecorder

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(officialRepository store.OfficialRepository, cryptoService crypto.Service, audit AuditRecorder, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		officialRepository: officialRepository,
		crypto:             cryptoService,
		audit:              audit,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		logger:             logger,
	}
}

// LoginOfficial authenticates a staff account.
//
// Both an unknown username and a wrong password collapse to
// [ErrWrongPassword] so the response never reveals which half of the pair
// was wrong. A successful sign-in is recorded in the audit trail.
func (a *authService) LoginOfficial(ctx context.Context, username, password string) (models.Official, models.Token, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		log.Error().Str("func", "authService.LoginOfficial").Msg("empty credentials provided")
		return models.Official{}, models.Token{}, ErrValidation
	}

	official, err := a.officialRepository.FindOfficialByUsername(ctx, username)
	if err != nil {
		log.Err(err).
			Str("func", "authService.LoginOfficial").
			Str("username", username).
			Msg("official lookup failed")
		return models.Official{}, models.Token{}, ErrWrongPassword
	}

	if !a.crypto.CheckPassword(official.PasswordHash, password) {
		log.Warn().
			Str("func", "authService.LoginOfficial").
			Str("username", username).
			Msg("wrong password")
		return models.Official{}, models.Token{}, ErrWrongPassword
	}

	actor := models.Actor{ID: official.OfficialID, Type: models.ActorOfficial, Role: official.Role}

	token, err := a.CreateToken(ctx, actor)
	if err != nil {
		return models.Official{}, models.Token{}, err
	}

	a.audit.Record(ctx, models.AuditLogEntry{
		ActorID:       official.OfficialID,
		ActorType:     models.ActorOfficial,
		Action:        models.AuditActionLogin,
		TableAffected: official.TableName(),
		RecordID:      official.OfficialID,
	})

	return official, token, nil
}

// CreateToken issues a signed JWT for the given actor.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, actor models.Actor) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, actor, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, ErrTokenCreationFailed
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, missing actor
// claims) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
