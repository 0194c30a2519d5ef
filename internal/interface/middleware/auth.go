package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-notes-api/pkg/response"
)

// TokenVerifier returns the user id embedded in a valid access token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Identity is the authenticated caller. It only exists after Auth accepted
// the request's bearer token.
type Identity struct {
	UserID string
}

type identityKey struct{}

const ctxIdentityKey = "identity"

// Auth requires "Authorization: Bearer <token>". A missing token is 401, a
// token that fails verification is 403.
func Auth(tokens TokenVerifier, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Access token missing")
			return
		}
		userID, err := tokens.Verify(token)
		if err != nil {
			if logger != nil {
				logger.WithError(err).
					WithField("request_id", c.GetString(ctxRequestIDKey)).
					Debug("access token rejected")
			}
			response.Abort(c, http.StatusForbidden, "Invalid or expired token")
			return
		}

		id := Identity{UserID: userID}
		c.Set(ctxIdentityKey, id)
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext reads the identity stored by Auth.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.UserID != ""
}

// IdentityFrom reads the identity stored by Auth on the gin context.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	if v, ok := c.Get(ctxIdentityKey); ok {
		if id, ok := v.(Identity); ok && id.UserID != "" {
			return id, true
		}
	}
	return IdentityFromContext(c.Request.Context())
}
