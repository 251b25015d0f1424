// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package http

import "errors"

// Sentinels the auth middleware answers 401 with. Each names one way the
// "Authorization" header can be unusable.
var (
	// ErrEmptyAuthorizationHeader: the header is absent.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header cannot be split into a
	// scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme is present but the token part is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
