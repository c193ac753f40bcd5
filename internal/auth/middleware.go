package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const identityKey = "auth.identity"

// IdentityResolver turns a bearer token into an Identity. Implemented by
// clients.UserClient; every service except the user service resolves
// identity remotely.
type IdentityResolver interface {
	GetUserInfo(ctx context.Context, token string) (*Identity, error)
}

// ResolveIdentity resolves the Authorization header if present and stashes
// the result in the gin context. It never aborts; handlers that need an
// identity use IdentityFrom and pick their own status code.
func ResolveIdentity(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.Next()
			return
		}
		identity, err := resolver.GetUserInfo(c.Request.Context(), token)
		if err != nil {
			slog.Warn("identity resolution failed", "error", err)
			c.Next()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAuth aborts with 401 when no identity was resolved.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireCapability aborts with 403 unless the resolved identity carries the
// given capability.
func RequireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication required"})
			return
		}
		if !identity.Can(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "permission denied"})
			return
		}
		c.Next()
	}
}

func IdentityFrom(c *gin.Context) *Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*Identity)
	return identity
}

// IsCrossService reports whether the request carries the Cross-Service
// marker header. Presence-only, not a credential.
func IsCrossService(c *gin.Context) bool {
	return c.GetHeader("Cross-Service") != ""
}
