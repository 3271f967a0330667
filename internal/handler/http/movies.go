// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
)

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.services.CatalogService.ListMovies(r.Context())
	if err != nil {
		status, body := responseFromError(err, nil)
		logger.FromRequest(r).Err(err).Int("status", status).Msg("listing movies failed")
		utils.WriteJSON(w, body, status)
		return
	}

	utils.WriteJSON(w, movies, http.StatusOK)
}
