package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

const ctxRealIPKey = "real_ip"

// TrustProxies limits which peers may set the client address through
// forwarding headers. With no proxies only the socket peer counts. platform
// is "cloudflare", "appengine" or a raw header name set by the platform edge.
func TrustProxies(engine *gin.Engine, proxies []string, platform string) error {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "":
		engine.TrustedPlatform = ""
	case "cloudflare":
		engine.TrustedPlatform = gin.PlatformCloudflare
	case "appengine", "google":
		engine.TrustedPlatform = gin.PlatformGoogleAppEngine
	default:
		engine.TrustedPlatform = strings.TrimSpace(platform)
	}
	if len(proxies) == 0 {
		proxies = nil
	}
	return engine.SetTrustedProxies(proxies)
}

// RealIP stores the client address under "real_ip". Forwarding headers are
// honoured only as far as TrustProxies allows.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxRealIPKey, resolveIP(c))
		c.Next()
	}
}

func resolveIP(c *gin.Context) string {
	raw := c.ClientIP()
	if ip := net.ParseIP(raw); ip != nil {
		return ip.String()
	}
	return raw
}

// ClientIP returns the address stored by RealIP, falling back to gin's view
// of the peer and finally to "unknown".
func ClientIP(c *gin.Context) string {
	if ip := c.GetString(ctxRealIPKey); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// AllowPrivateIP bypasses rate limiting for loopback and private-range
// clients.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ClientIP(c))
		if parsed == nil {
			return false
		}
		return parsed.IsLoopback() || parsed.IsPrivate()
	}
}
