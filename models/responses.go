// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Values of [StatusResponse.Status]. The mixed casing is what the existing
// mobile client matches on.
const (
	StatusSuccess = "success"
	StatusFailed  = "Failed"
	StatusError   = "error"
)

// StatusResponse is the JSON envelope returned by the auth endpoints and by
// every error path.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
