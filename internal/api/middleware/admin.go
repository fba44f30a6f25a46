package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stickjunkey/stickjunkey-backend/internal/errors"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	"github.com/stickjunkey/stickjunkey-backend/internal/utils/response"
)

// UserLookup is the slice of the user repository the admin gate needs.
type UserLookup interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type AdminMiddleware struct {
	users UserLookup
}

func NewAdminMiddleware(users UserLookup) *AdminMiddleware {
	return &AdminMiddleware{users: users}
}

// RequireAdmin runs after Authenticate and checks the admin flag on the
// stored user record, not on the token, so revoking admin takes effect
// on the next request.
func (m *AdminMiddleware) RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Admin route hit without authentication")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		user, err := m.users.GetUserByID(r.Context(), claims.UserID)
		if err != nil || user == nil || !user.IsAdmin {
			logger.Warn("Admin access denied")
			response.Error(w, errors.ForbiddenError("Admin access required"))

			return
		}

		next.ServeHTTP(w, r)
	}
}
