package service

import (
	"context"

	"github.com/MKhiriev/go-medlux/internal/session"
	"github.com/MKhiriev/go-medlux/models"
)

func currentIdentity(ctx context.Context) (models.Identity, error) {
	identity, ok := session.FromContext(ctx)
	if !ok {
		return models.Identity{}, ErrUnauthenticated
	}
	return identity, nil
}

// requireAdmin returns the caller identity if it is an admin and an
// [*AdminOnlyError] carrying message otherwise.
func requireAdmin(ctx context.Context, message string) (models.Identity, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return identity, err
	}
	if !identity.IsAdmin() {
		return identity, &AdminOnlyError{Message: message}
	}
	return identity, nil
}
