package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aura/internal/model"
	"aura/pkg/log"
)

const (
	// UserIDHeader names the user the request acts for.
	UserIDHeader = "X-User-ID"
	// RequestIDHeader is echoed back and attached to log lines.
	RequestIDHeader = "X-Request-ID"
	// DefaultUserID is the single local user when no header is sent.
	DefaultUserID = "local"
)

type scopeCtxKey struct{}

// Scope resolves the acting user and stores it in the request context.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			userID = m.defaultUserID
		}

		ctx := SetScope(c.Request.Context(), model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestID tags the request with an id, reusing the client's when present.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// SetScope returns a copy of ctx carrying sc.
func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScope returns the scope stored by Scope, or the zero Scope.
func GetScope(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc
}
