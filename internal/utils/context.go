// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/ncastillo/eserbisyo/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key used to store the authenticated actor in the
// context. Used together with GetActorFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ActorCtxKey, actor)
var ActorCtxKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated actor from the context.
//
// Returns the actor and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(models.Actor)
	return actor, ok
}

// ClientIPCtxKey is the key under which the transport layer stores the
// caller's remote address for the audit trail.
var ClientIPCtxKey = contextKey("clientIP")

// GetClientIPFromContext retrieves the caller's remote address, if the
// transport layer recorded one.
func GetClientIPFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(ClientIPCtxKey).(string)
	return ip, ok
}
