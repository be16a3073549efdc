package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sendsafe/sendsafe-api/internal/config"
)

type header struct {
	name, value string
}

// SecurityHeaders sets the configured hardening headers on every response.
// HSTS is only sent over HTTPS, directly or behind a TLS-terminating proxy.
func SecurityHeaders(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	var headers []header
	add := func(name, value string) {
		if value != "" {
			headers = append(headers, header{name, value})
		}
	}
	if cfg.ContentTypeNosniff {
		add("X-Content-Type-Options", "nosniff")
	}
	add("X-Frame-Options", cfg.FrameOptions)
	add("X-XSS-Protection", cfg.XSSProtection)
	add("Content-Security-Policy", cfg.ContentSecurityPolicy)
	add("Referrer-Policy", cfg.ReferrerPolicy)
	add("Permissions-Policy", cfg.PermissionsPolicy)

	hsts := ""
	if cfg.EnableHSTS {
		directives := []string{"max-age=" + strconv.Itoa(cfg.HSTSMaxAge)}
		if cfg.HSTSIncludeSubdomains {
			directives = append(directives, "includeSubDomains")
		}
		if cfg.HSTSPreload {
			directives = append(directives, "preload")
		}
		hsts = strings.Join(directives, "; ")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, hd := range headers {
				h.Set(hd.name, hd.value)
			}
			if hsts != "" && isHTTPS(r) {
				h.Set("Strict-Transport-Security", hsts)
			}
			h.Del("Server")
			h.Del("X-Powered-By")

			next.ServeHTTP(w, r)
		})
	}
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
