package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIP resolves the submitter's address for rate limiting and audit
// records. Cloudflare's header wins when present, then the first hop of
// X-Forwarded-For, then the socket peer.
func ClientIP(c *gin.Context) string {
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" && net.ParseIP(ip) != nil {
		return ip
	}

	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}

	return c.ClientIP()
}
