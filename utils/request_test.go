package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	for _, bad := range []string{"", "Bearer", "Bearer   ", "Basic abc", "bearer abc"} {
		_, err := ExtractTokenFromHeader(bad)
		assert.Error(t, err, bad)
	}
}

func TestAdminTokenPrefersCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer from-header")
	c.Request.AddCookie(&http.Cookie{Name: AdminTokenCookie, Value: "from-cookie"})

	token, err := AdminToken(c)
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", token)
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", GetClientIP(c))
}

func TestDescribeUserAgent(t *testing.T) {
	ua := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile Safari/604.1"
	assert.Equal(t, "Safari on iOS (mobile)", DescribeUserAgent(ua))
	assert.Equal(t, "Other on Other (desktop)", DescribeUserAgent(""))
}
