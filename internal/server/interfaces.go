// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown releases resources and may be called from another goroutine.
type Server interface {
	RunServer()
	Shutdown()
}
