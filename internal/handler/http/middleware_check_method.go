// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// chi calls it when the path matches a route but the method does not, and it
// answers 404 instead of 405 so "GET /login" looks like an unknown path.
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}
}
