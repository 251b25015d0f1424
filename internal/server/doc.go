// Package server wires and runs the application's HTTP transport.
//
// It provides startup, OS signal handling, and graceful shutdown for the
// REST API server of the issuance engine.
package server
