// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the campaign API.
//
// Each invocation runs one command (list campaigns, sign in, register help
// and so on) through an [adapter.ServerAdapter] and prints the result as
// indented JSON.
package client
