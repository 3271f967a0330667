// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	// auth
	router.Post("/register", h.register)
	router.Post("/login", h.login)
	router.Post("/logout", h.logout)

	// catalog
	router.Get("/movies", h.listMovies)

	router.Get("/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
