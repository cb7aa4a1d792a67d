package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/service"
	"github.com/MKhiriev/go-medlux/internal/session"
	"github.com/MKhiriev/go-medlux/internal/utils"
	"github.com/MKhiriev/go-medlux/models"
)

// tokenQueryParam lets the browser open the printable report in a new tab,
// where it cannot set the Authorization header.
const tokenQueryParam = "token"

// auth resolves the bearer token of the request into a session identity.
//
// On success the identity and the raw token are stored in the request
// context (see [session.WithIdentity] and [utils.SessionTokenCtxKey]) and the
// request logger is tagged with the user id. Anonymous requests are answered
// with 401 and a localized message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.authenticate(r, false)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "Handler.auth").Msg("anonymous request rejected")
			utils.WriteError(w, app.MsgLoginRequired, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// pageAuth is the HTML variant of auth: it also accepts the token from the
// query string and redirects anonymous callers to the login page.
func (h *Handler) pageAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.authenticate(r, true)
		if err != nil {
			target := service.LoginPath
			var redirect *session.RedirectError
			if errors.As(err, &redirect) && redirect.Target != "" {
				target = redirect.Target
			}

			logger.FromRequest(r).Debug().Err(err).Str("func", "Handler.pageAuth").Str("target", target).Msg("redirecting anonymous request")
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin rejects non-admin identities with 403 and message. It must
// run after auth.
func (h *Handler) requireAdmin(message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := session.FromContext(r.Context())
			if !ok {
				utils.WriteError(w, app.MsgLoginRequired, http.StatusUnauthorized)
				return
			}
			if !identity.IsAdmin() {
				logger.FromRequest(r).Warn().Str("func", "Handler.requireAdmin").Str("user_id", identity.UserID).Msg("admin route refused")
				utils.WriteError(w, message, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) authenticate(r *http.Request, allowQuery bool) (context.Context, error) {
	token, err := tokenFromRequest(r, allowQuery)
	if err != nil {
		return nil, err
	}

	ctx := r.Context()
	identity, err := h.services.AuthService.Session(ctx, token)
	if err != nil {
		return nil, err
	}

	return withSession(ctx, identity, token), nil
}

func withSession(ctx context.Context, identity models.Identity, token string) context.Context {
	ctx = session.WithIdentity(ctx, identity)
	ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, token)
	return logger.FromContext(ctx).WithIdentity(identity).WithContext(ctx)
}

func tokenFromRequest(r *http.Request, allowQuery bool) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		if allowQuery {
			if token := r.URL.Query().Get(tokenQueryParam); token != "" {
				return token, nil
			}
		}
		return "", ErrEmptyAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", errors.Join(ErrInvalidAuthorizationHeader, err)
	}
	return token, nil
}
