package middleware

import (
	"net/http"
	"strings"
)

type CORSMiddleware struct {
	allowedOrigins []string
}

// NewCORSMiddleware accepts a comma separated origin list. An empty
// list allows any origin.
func NewCORSMiddleware(origins string) *CORSMiddleware {
	m := &CORSMiddleware{}
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			m.allowedOrigins = append(m.allowedOrigins, origin)
		}
	}
	return m
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", m.origin(req.Header.Get("Origin")))
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (m *CORSMiddleware) origin(requestOrigin string) string {
	if len(m.allowedOrigins) == 0 {
		return "*"
	}
	for _, origin := range m.allowedOrigins {
		if origin == requestOrigin {
			return origin
		}
	}
	return m.allowedOrigins[0]
}
