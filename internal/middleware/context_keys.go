package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of the keys this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	adminIDKey   = contextKey("adminID")
	adminNameKey = contextKey("adminName")
)

// AdminIDFromCtx returns the authenticated admin ID carried by ctx.
func AdminIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminIDKey).(string)
	return id, ok && id != ""
}

// GetAdminIDFromContext retrieves the authenticated admin ID from the request.
// It returns the admin ID and a boolean indicating if it was found.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	return AdminIDFromCtx(c.Request.Context())
}

// GetAdminNameFromContext retrieves the authenticated admin name from the request.
func GetAdminNameFromContext(c *gin.Context) (string, bool) {
	name, ok := c.Request.Context().Value(adminNameKey).(string)
	return name, ok
}

// WithAdmin returns a copy of ctx carrying the admin identity.
func WithAdmin(ctx context.Context, adminID, adminName string) context.Context {
	ctx = context.WithValue(ctx, adminIDKey, adminID)
	return context.WithValue(ctx, adminNameKey, adminName)
}
