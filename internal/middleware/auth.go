package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellbeing/backend/internal/apierror"
	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/pkg/supabase"
)

// UserIDKey holds the authenticated user id in the gin context
const UserIDKey = "user_id"

// TokenVerifier checks a bearer token. *supabase.Client satisfies it.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*supabase.User, error)
}

// Auth middleware to verify Supabase JWT tokens
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Ctx(c.Request.Context())

		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			log.Debug("authentication failed: missing or malformed authorization header")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			return
		}
		token = strings.TrimSpace(token)

		user, err := verifier.VerifyToken(c.Request.Context(), token)
		if errors.Is(err, supabase.ErrInvalidToken) {
			log.Warn("authentication failed: token rejected", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			return
		}
		if err != nil {
			// The auth service itself failed; the token may well be valid
			log.Error("authentication failed: token verification unavailable", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewBadGatewayError(apierror.GetRequestID(c)))
			return
		}

		c.Set(UserIDKey, user.ID)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		log.Debug("authentication successful", logger.String("user_id", user.ID))

		c.Next()
	}
}
