package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every issued JWT. It extends the
// registered claims with the actor type and role needed by the engine's role
// checks, so that a single parse yields a complete [Actor].
type TokenClaims struct {
	jwt.RegisteredClaims

	// ActorType is Resident or Official.
	ActorType string `json:"actor_type"`

	// Role is the official's role; empty for residents.
	Role string `json:"role,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// Actor is a cached, parsed copy of the claims: the "sub" claim converted to
// int64 plus the actor type and role.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Actor is the identity extracted from the claims.
	Actor Actor `json:"-"`
}

// GetActor extracts the actor from the token's claims: the "sub" claim
// parsed as a base-10 int64 plus the actor_type and role claims.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetActor() (Actor, error) {
	sub, err := t.TokenClaims.GetSubject()
	if err != nil {
		return Actor{}, fmt.Errorf("error extracting subject from token: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Actor{}, fmt.Errorf("error converting subject to actor ID: %w", err)
	}

	return Actor{ID: id, Type: t.TokenClaims.ActorType, Role: t.TokenClaims.Role}, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
