// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrTransportFailed wraps the error of a transport that stopped on its
	// own, e.g. because its address was already in use.
	ErrTransportFailed = errors.New("transport stopped unexpectedly")
)
