package middleware

import (
	"net/http"
	"strings"

	"github.com/sohublabs/smartstore-backend/api/responses"
	pkgAuth "github.com/sohublabs/smartstore-backend/pkg/auth"
	"github.com/sohublabs/smartstore-backend/pkg/config"
	pkgerrors "github.com/sohublabs/smartstore-backend/pkg/errors"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
)

// AdminAuth validates a bearer token and seeds the request context with the
// admin identity. Back-office routes sit behind this.
func AdminAuth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAdminToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := WithAdminID(r.Context(), claims.AdminID.String())
			if logg != nil {
				ctx = logg.WithAdminID(ctx, claims.AdminID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
