// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data, sets the JSON content type and writes the body
// with the given status code. Marshal failures answer with a plain 500; the
// wrapped error is returned so the caller can log it.
//
// The status code is written after a successful marshal, so a failure never
// leaves a misleading 2xx on the wire.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
