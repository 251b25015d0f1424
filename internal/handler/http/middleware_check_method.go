// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered as
// the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method is
// not handled. This override responds with HTTP 404 Not Found instead,
// hiding the existence of the route from callers probing with unsupported
// methods. If the requested method IS registered for the matched route, the
// request is forwarded to the router's normal ServeHTTP pipeline.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		// Only exact pattern matches are considered; parameterised segments
		// are not expanded during this check.
		allRoutes := router.Routes()
		var foundRoute chi.Route
		for _, route := range allRoutes {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
