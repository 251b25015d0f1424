package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ncastillo/eserbisyo/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given actor.
//
// The token includes the following claims:
//   - Issuer     (iss): identifies the service that issued the token
//   - Subject    (sub): the actor ID encoded as a string
//   - IssuedAt   (iat): the current time
//   - ExpiresAt  (exp): the current time plus tokenDuration
//   - actor_type      : Resident or Official
//   - role            : the official's role, omitted for residents
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateJWTToken(issuer string, actor models.Actor, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || actor.Type == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(actor.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ActorType: actor.Type,
		Role:      actor.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, TokenClaims: claims, SignedString: tokenString, Actor: actor}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the actor it was issued for.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 actor ID
//   - actor_type claim presence
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	result := models.Token{Token: token, TokenClaims: *claims, SignedString: tokenString}

	actor, err := result.GetActor()
	if err != nil {
		return models.Token{}, err
	}
	if actor.Type == "" {
		return models.Token{}, errors.New("missing actor_type claim")
	}
	result.Actor = actor

	return result, nil
}

// ParseBearerToken extracts the token part of an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
