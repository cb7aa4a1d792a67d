package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-medlux/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following claims:
//   - Issuer   (iss): identifies the suite instance that issued the token
//   - Subject  (sub): the user id of the identity
//   - ID       (jti): the server-side session id
//   - IssuedAt (iat): the current time
//   - role:          the role of the identity
//
// Session tokens carry no expiry; a session ends when it is cleared.
// Returns an error if issuer, sessionID, signKey or the user id is empty.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("medlux-suite", sid, identity, "secret")
func GenerateSessionToken(issuer, sessionID string, identity models.Identity, signKey string) (string, error) {
	if issuer == "" || sessionID == "" || signKey == "" || identity.UserID == "" {
		return "", errors.New("invalid params for generating session token")
	}

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  identity.UserID,
			ID:       sessionID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Role: identity.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseSessionToken verifies the signature, the signing method
// and the issuer of tokenString and returns its claims.
//
// The subject and the session id must both be present.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("empty subject error")
	}
	if claims.ID == "" {
		return nil, errors.New("empty session id error")
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
