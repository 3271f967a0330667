// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or the listener
// fails. Shutdown stops accepting connections and waits for in-flight
// requests up to the shutdown timeout.
type Server interface {
	RunServer() error
	Shutdown()
}
