// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It builds the client context (cache, server adapter and services), then
// alternates between the login flow and the main loop of the terminal UI
// until the user quits.
package client
