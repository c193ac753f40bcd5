package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := issuer.Issue(42)
		assert.NoError(t, err)

		id, err := issuer.UserID(token)
		assert.NoError(t, err)
		assert.Equal(t, uint64(42), id)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := issuer.Issue(42)
		assert.NoError(t, err)

		other := NewTokenIssuer("other-secret", time.Hour)
		_, err = other.UserID(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		short := NewTokenIssuer("test-secret", -time.Minute)
		token, err := short.Issue(42)
		assert.NoError(t, err)

		_, err = short.UserID(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.UserID("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCapabilitiesForRole(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{CapManageOrders, CapManageProducts, CapManagePayments},
		CapabilitiesForRole("ADMIN"))
	assert.Empty(t, CapabilitiesForRole("CUSTOMER"))
	assert.Empty(t, CapabilitiesForRole(""))
}

func TestIdentityCan(t *testing.T) {
	var nilIdentity *Identity
	assert.False(t, nilIdentity.Can(CapManageOrders))

	identity := &Identity{Capabilities: []string{CapManageOrders}}
	assert.True(t, identity.Can(CapManageOrders))
	assert.False(t, identity.Can(CapManageProducts))
}

type staticResolver struct {
	identity *Identity
	err      error
}

func (r staticResolver) GetUserInfo(ctx context.Context, token string) (*Identity, error) {
	return r.identity, r.err
}

func middlewareRequest(t *testing.T, resolver IdentityResolver, extra gin.HandlerFunc, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{ResolveIdentity(resolver)}
	if extra != nil {
		handlers = append(handlers, extra)
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/probe", handlers...)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header = header
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	t.Run("resolved identity passes", func(t *testing.T) {
		w := middlewareRequest(t, staticResolver{identity: &Identity{ID: 7}}, RequireAuth(),
			http.Header{"Authorization": []string{"Bearer x"}})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := middlewareRequest(t, staticResolver{}, RequireAuth(), http.Header{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("resolver failure is rejected", func(t *testing.T) {
		w := middlewareRequest(t, staticResolver{err: errors.New("user service down")}, RequireAuth(),
			http.Header{"Authorization": []string{"Bearer x"}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireCapability(t *testing.T) {
	admin := &Identity{ID: 1, Capabilities: CapabilitiesForRole("ADMIN")}
	customer := &Identity{ID: 2}

	t.Run("capability holder passes", func(t *testing.T) {
		w := middlewareRequest(t, staticResolver{identity: admin}, RequireCapability(CapManageProducts),
			http.Header{"Authorization": []string{"Bearer x"}})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("authenticated without capability gets 403", func(t *testing.T) {
		w := middlewareRequest(t, staticResolver{identity: customer}, RequireCapability(CapManageProducts),
			http.Header{"Authorization": []string{"Bearer x"}})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous gets 401", func(t *testing.T) {
		w := middlewareRequest(t, staticResolver{}, RequireCapability(CapManageProducts), http.Header{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
