package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub interface{}, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func invoke(t *testing.T, authz string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	require.NoError(t, h(c))
	return rec, c
}

func TestAuthJWTAccepted(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}

	rec, c := invoke(t, "Bearer "+signToken(t, "42", "USER"), AuthJWT(cfg))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), c.Get(CtxUserIDKey))
	assert.Equal(t, "USER", c.Get(CtxUserRoleKey))
}

// subは文字列でも数値でも受ける
func TestAuthJWTNumericSub(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}

	rec, c := invoke(t, "Bearer "+signToken(t, 42, "ADMIN"), AuthJWT(cfg))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), c.Get(CtxUserIDKey))
}

func TestAuthJWTRejected(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}

	// ヘッダ無し
	rec, _ := invoke(t, "", AuthJWT(cfg))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Bearer形式でない
	rec, _ = invoke(t, "Basic abc", AuthJWT(cfg))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// 署名が違う
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42", "role": "USER"})
	bad, err := other.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)
	rec, _ = invoke(t, "Bearer "+bad, AuthJWT(cfg))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// roleが無い
	rec, _ = invoke(t, "Bearer "+signToken(t, "42", ""), AuthJWT(cfg))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}

	rec, _ := invoke(t, "Bearer "+signToken(t, "1", RoleAdmin), AuthJWT(cfg), RequireRole(RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	// 一般ユーザーは403
	rec, _ = invoke(t, "Bearer "+signToken(t, "1", RoleCustomer), AuthJWT(cfg), RequireRole(RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// AuthJWTを通っていない（roleがcontextに無い）リクエストは401
	rec, _ = invoke(t, "", RequireRole(RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
