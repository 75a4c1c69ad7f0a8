package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/tokenclaims"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

func signToken(t *testing.T, userID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenclaims.Claims{
		UserID: userID,
		Role:   role,
		Name:   "Token Name",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return signed
}

func newAuth(h *harness) (AuthService, *session.Store) {
	store := session.NewStore(h.redis, time.Hour, h.log)
	return NewAuthService(h.deps.Client, store, tokenclaims.NewParser("", ""), h.deps.Validator, h.log), store
}

func TestAuthService_LoginCreatesSession(t *testing.T) {
	h := newHarness(t)
	auth, store := newAuth(h)

	access := signToken(t, "42", session.RoleVendor)
	h.backend.on(http.MethodPost, "/auth/login", ok(entities.LoginResult{
		AccessToken:  access,
		RefreshToken: "refresh-42",
		User:         entities.User{ID: 42, Name: "Vendor One", Email: "v@sooquk.test", Role: session.RoleVendor},
	}))

	sess, err := auth.Login(context.Background(), models.LoginReq{Email: "v@sooquk.test", Password: "secret1"}, "ar")
	require.NoError(t, err)
	assert.Equal(t, "42", sess.UserID)
	assert.Equal(t, session.RoleVendor, sess.Role)
	assert.Equal(t, "ar", sess.Locale)

	loaded, err := store.Load(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, access, loaded.AccessToken)
	assert.Equal(t, "refresh-42", loaded.RefreshToken)
}

func TestAuthService_LoginFallsBackToClaims(t *testing.T) {
	h := newHarness(t)
	auth, _ := newAuth(h)

	h.backend.on(http.MethodPost, "/auth/login", ok(entities.LoginResult{
		AccessToken:  signToken(t, "7", session.RoleShippingCompany),
		RefreshToken: "r",
	}))

	sess, err := auth.Login(context.Background(), models.LoginReq{Email: "s@sooquk.test", Password: "secret1"}, "en")
	require.NoError(t, err)
	assert.Equal(t, "7", sess.UserID)
	assert.Equal(t, session.RoleShippingCompany, sess.Role)
	assert.Equal(t, "Token Name", sess.Name)
	assert.Equal(t, "s@sooquk.test", sess.Email)
}

func TestAuthService_LoginRejectsCustomers(t *testing.T) {
	h := newHarness(t)
	auth, _ := newAuth(h)

	h.backend.on(http.MethodPost, "/auth/login", ok(entities.LoginResult{
		AccessToken: signToken(t, "5", "Customer"),
		User:        entities.User{ID: 5, Role: "Customer"},
	}))

	_, err := auth.Login(context.Background(), models.LoginReq{Email: "c@sooquk.test", Password: "secret1"}, "en")
	assert.ErrorIs(t, err, apperrors.ErrRoleNotAllowed)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	h := newHarness(t)
	auth, _ := newAuth(h)

	h.backend.on(http.MethodPost, "/auth/login", fail(http.StatusUnauthorized, "invalid email or password"))

	_, err := auth.Login(context.Background(), models.LoginReq{Email: "a@sooquk.test", Password: "wrong12"}, "en")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, 0, h.backend.count(http.MethodPost, "/auth/refresh-token"))
}

func TestAuthService_LoginValidatesInput(t *testing.T) {
	h := newHarness(t)
	auth, _ := newAuth(h)

	_, err := auth.Login(context.Background(), models.LoginReq{Email: "not-an-email", Password: "x"}, "en")
	var fields apperrors.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "validation.email", fields["email"])
	assert.Equal(t, "validation.min|6", fields["password"])
	assert.Equal(t, 0, h.backend.count(http.MethodPost, "/auth/login"))
}

func TestAuthService_LogoutEndsSessionEvenIfBackendFails(t *testing.T) {
	h := newHarness(t)
	auth, store := newAuth(h)

	h.backend.on(http.MethodPost, "/auth/logout", fail(http.StatusInternalServerError, "boom"))

	sess, err := store.Create(context.Background(), &session.Session{UserID: "1", Role: session.RoleAdmin, AccessToken: "a", RefreshToken: "r"})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(context.Background(), sess))
	assert.Equal(t, 1, h.backend.count(http.MethodPost, "/auth/logout"))

	_, err = store.Load(context.Background(), sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestAuthService_Me(t *testing.T) {
	h := newHarness(t)
	auth, _ := newAuth(h)

	h.backend.on(http.MethodGet, "/auth/me", ok(entities.User{ID: 1, Name: "Admin"}))

	user, err := auth.Me(asUser("1", session.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Name)
	assert.Equal(t, session.RoleAdmin, user.Role)

	_, err = auth.Me(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestAuthService_ServiceLogin(t *testing.T) {
	h := newHarness(t)
	auth, _ := newAuth(h)

	h.backend.on(http.MethodPost, "/auth/login", ok(entities.LoginResult{AccessToken: "svc-access", RefreshToken: "svc-refresh"}))

	tokens, err := auth.ServiceLogin(context.Background(), "worker@sooquk.test", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "svc-access", tokens.AccessToken)
	assert.Equal(t, "svc-refresh", tokens.RefreshToken)
}
