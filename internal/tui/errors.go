// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-medlux/internal/adapter"
)

const msgServerUnavailable = "Sem rede ou servidor indisponível."

// humanizeError turns an adapter error into the text shown to the user:
// the server's own message when there is one, a fixed notice for network
// failures, the raw error otherwise.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if msg := adapter.Message(err); msg != "" {
		return msg
	}
	if errors.Is(err, adapter.ErrUnavailable) {
		return msgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
