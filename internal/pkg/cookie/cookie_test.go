//go:build unit

package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"drop-arbiter/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SetAccessToken(c, config.CookieConfig{Secure: true, SameSite: "Strict"}, "tok", time.Hour)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	got := cookies[0]
	assert.Equal(t, AccessTokenCookieName, got.Name)
	assert.Equal(t, "tok", got.Value)
	assert.Equal(t, 3600, got.MaxAge)
	assert.True(t, got.HttpOnly)
	assert.True(t, got.Secure)
	assert.Equal(t, http.SameSiteStrictMode, got.SameSite)
}

func TestClearAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ClearAccessToken(c, config.CookieConfig{})

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestGetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetAccessToken(c))

	c.Request.AddCookie(&http.Cookie{Name: AccessTokenCookieName, Value: "tok"})
	assert.Equal(t, "tok", GetAccessToken(c))
}
