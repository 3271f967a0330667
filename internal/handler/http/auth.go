// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	if err := h.services.AuthService.Register(r.Context(), credentials); err != nil {
		status, body := responseFromError(err, registerErrors)
		log.Err(err).Int("status", status).Msg("registration failed")
		utils.WriteJSON(w, body, status)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: models.StatusSuccess, Message: msgRegisterSuccess}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	if err := h.services.AuthService.Login(r.Context(), credentials); err != nil {
		status, body := responseFromError(err, loginErrors)
		log.Err(err).Int("status", status).Msg("login failed")
		utils.WriteJSON(w, body, status)
		return
	}

	log.Debug().Str("username", credentials.Username).Msg("user successfully logged in")
	utils.WriteJSON(w, models.StatusResponse{Status: models.StatusSuccess, Message: msgLoginSuccess}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LogoutRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), request.Username); err != nil {
		status, body := responseFromError(err, logoutErrors)
		log.Err(err).Int("status", status).Msg("logout failed")
		utils.WriteJSON(w, body, status)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: models.StatusSuccess, Message: msgLogoutSuccess}, http.StatusOK)
}

// decodeJSON reads the request body into v. On failure it writes the 400
// envelope and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, responseInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}
