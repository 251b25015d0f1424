// Package http implements the HTTP transport layer of the issuance engine.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API. Authentication, request tracing, access logging, client address
// capture, and response compression are handled in this package before
// requests are delegated to the service layer. The only unauthenticated
// routes are official login and the public document verification lookup.
package http
