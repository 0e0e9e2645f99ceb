package jwtmw

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task_backend/internal/api"
	"task_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the gin context key under which the resolved user is stored.
const ContextUser = "currentUser"

// TokenDecoder validates a bearer token and returns its payload.
type TokenDecoder interface {
	Decode(token string) (Payload, error)
}

// UserFinder loads the user record for a token subject.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that resolves the bearer token into a
// concrete user and stores it in the request context. Every protected route
// passes through here; no task operation runs without a resolved user.
//
// All failure branches (missing header, bad signature, expired token, unknown
// subject) produce the same 403 response so the client cannot tell them
// apart. The specific cause is recorded in the log only.
func AuthRequired(codec TokenDecoder, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			slog.Warn("auth rejected: missing bearer token", "remote_addr", c.ClientIP())
			reject(c)
			return
		}

		payload, err := codec.Decode(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			slog.Warn("auth rejected: token invalid", "error", err, "remote_addr", c.ClientIP())
			reject(c)
			return
		}

		user, err := users.FindByID(c.Request.Context(), payload.UserID)
		if err != nil {
			// 未知のサブジェクトも不正トークンと同じレスポンスにする（ユーザー列挙防止）
			slog.Warn("auth rejected: unknown subject", "error", err, "remote_addr", c.ClientIP())
			reject(c)
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

func reject(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "invalid token"})
}
