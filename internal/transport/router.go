package transport

import (
	"net/http"

	"sushimenu/internal/logger"
	"sushimenu/internal/middleware"
	"sushimenu/internal/sushi"
)

// NewRouter wires the catalog REST surface with request-id, logging and
// rate-limit middleware.
func NewRouter(svc sushi.Service) http.Handler {
	h := NewSushiHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sushi", h.List)
	mux.HandleFunc("POST /sushi", h.Create)
	mux.HandleFunc("GET /sushi/{id}", h.Get)
	mux.HandleFunc("DELETE /sushi/{id}", h.Archive)

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	return handler
}
