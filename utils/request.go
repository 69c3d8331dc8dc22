package utils

import (
	"errors"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminTokenCookie is the cookie the admin panel keeps its JWT in.
const AdminTokenCookie = "admin_token"

// ExtractTokenFromHeader extracts JWT token from Authorization header
// Format: "Bearer <token>"
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || scheme != "Bearer" {
		return "", errors.New("authorization header must start with 'Bearer '")
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", errors.New("token is empty")
	}
	return token, nil
}

// AdminToken reads the admin JWT from the cookie, then the Authorization
// header.
func AdminToken(c *gin.Context) (string, error) {
	if token, err := c.Cookie(AdminTokenCookie); err == nil && token != "" {
		return token, nil
	}
	return ExtractTokenFromHeader(c.GetHeader("Authorization"))
}

// GetClientIP gets the real client IP (handles proxies)
func GetClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
			return ip
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" && net.ParseIP(xri) != nil {
		return xri
	}
	return c.ClientIP()
}

// DescribeUserAgent reduces a User-Agent header to "Browser on OS (device)".
func DescribeUserAgent(userAgent string) string {
	return parseBrowser(userAgent) + " on " + parseOS(userAgent) + " (" + parseDeviceType(userAgent) + ")"
}

func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") {
		return "mobile"
	}
	return "desktop"
}

func parseBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari"):
		return "Safari"
	}
	return "Other"
}

func parseOS(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		return "iOS"
	case strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "linux"):
		return "Linux"
	}
	return "Other"
}
