// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the movie catalog.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, panic recovery and
// response compression are handled here before requests are delegated to
// the service layer. Service errors are translated into status codes and
// the {status, message} envelope by the per-operation tables in
// errors_mapper.go.
package http
