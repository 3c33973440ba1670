package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin matches exactly one subdomain label, e.g.
// https://*.example.com matches https://app.example.com only
type wildcardOrigin struct {
	scheme string
	suffix string
}

// parseWildcardOrigin returns nil unless pattern is scheme://*.domain.tld
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	scheme, rest, ok := strings.Cut(pattern, "://")
	if !ok || scheme == "" {
		return nil
	}
	if !strings.HasPrefix(rest, "*.") || strings.Count(rest, "*") != 1 {
		return nil
	}
	suffix := rest[1:]
	// at least domain.tld after the wildcard
	if strings.Count(suffix, ".") < 2 || strings.HasSuffix(suffix, ".") {
		return nil
	}
	return &wildcardOrigin{scheme: scheme + "://", suffix: suffix}
}

func (w *wildcardOrigin) matches(origin string) bool {
	rest, ok := strings.CutPrefix(origin, w.scheme)
	if !ok {
		return false
	}
	label, ok := strings.CutSuffix(rest, w.suffix)
	return ok && label != "" && !strings.ContainsAny(label, "./:")
}

// CORS middleware to handle cross-origin requests. An empty allowed list
// allows every origin. Entries may be exact origins or single-label
// wildcards such as https://*.example.pages.dev.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	var exact []string
	var wildcards []*wildcardOrigin
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if w := parseWildcardOrigin(o); w != nil {
			wildcards = append(wildcards, w)
			continue
		}
		exact = append(exact, o)
	}
	allowAll := len(exact) == 0 && len(wildcards) == 0

	allowed := func(origin string) bool {
		if slices.Contains(exact, origin) {
			return true
		}
		for _, w := range wildcards {
			if w.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAll {
			c.Header("Access-Control-Allow-Origin", "*")
		} else if origin != "" && allowed(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		} else if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept, Origin, Cache-Control, X-Request-ID")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID, Retry-After")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
