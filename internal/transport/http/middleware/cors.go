package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/cors"
)

type CORSOptions struct {
	Enabled        bool
	AllowedOrigins []string
	MaxAge         time.Duration
}

var (
	corsAllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsAllowedHeaders = []string{"Authorization", "Content-Type", "Accept", "X-Requested-With", "Origin"}
	corsExposedHeaders = []string{"Authorization", "Content-Type"}
)

// CORS answers preflight requests and sets CORS headers for allowed origins.
// Origin patterns may end in ":*" to accept any port, or start with "*." for subdomains.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	if !opts.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	patterns := opts.AllowedOrigins
	return cors.Handler(cors.Options{
		AllowedOrigins: patterns,
		// go-chi/cors wildcards would let http://localhost:* match http://localhost:3000.evil.com
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, patterns)
		},
		AllowedMethods:   corsAllowedMethods,
		AllowedHeaders:   corsAllowedHeaders,
		ExposedHeaders:   corsExposedHeaders,
		AllowCredentials: true,
		MaxAge:           int(opts.MaxAge.Seconds()),
	})
}

func isOriginAllowed(origin string, patterns []string) bool {
	if origin == "" {
		return false
	}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		switch {
		case p == "":
			continue
		case p == "*":
			return true
		case p == origin:
			return true
		case strings.HasSuffix(p, ":*"):
			// http://localhost:* matches http://localhost:3000 but not http://localhost.evil.com
			prefix := strings.TrimSuffix(p, "*")
			if rest, ok := strings.CutPrefix(origin, prefix); ok && isPort(rest) {
				return true
			}
			if origin == strings.TrimSuffix(prefix, ":") {
				return true
			}
		case strings.HasPrefix(p, "*."):
			// *.example.com matches app.example.com but NOT example.com
			domain := strings.TrimPrefix(p, "*")
			if i := strings.Index(origin, "://"); i >= 0 {
				host := origin[i+3:]
				if strings.HasSuffix(host, domain) && len(host) > len(domain) {
					return true
				}
			}
		}
	}
	return false
}

func isPort(s string) bool {
	if s == "" || len(s) > 5 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
