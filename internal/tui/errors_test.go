package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-medlux/internal/adapter"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "server message", err: fmt.Errorf("wrap: %w", &adapter.APIError{Status: 409, Message: "Vínculo já está ativo."}), want: "Vínculo já está ativo."},
		{name: "unavailable sentinel", err: fmt.Errorf("%w: eof", adapter.ErrUnavailable), want: msgServerUnavailable},
		{name: "refused", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: msgServerUnavailable},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := humanizeError(tt.err); got != tt.want {
				t.Errorf("humanizeError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFitText(t *testing.T) {
	if got := fitText("Retrorrefletômetro", 8); got != "Retro..." {
		t.Errorf("fitText() = %q", got)
	}
	if got := fitText("EQ", 8); got != "EQ" {
		t.Errorf("fitText() = %q", got)
	}
	if got := fitText("abcdef", 2); got != "ab" {
		t.Errorf("fitText() = %q", got)
	}
}
