// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It connects the suite adapter to the terminal UI and loops between the
// login form and the main views for the life of the process.
package client
