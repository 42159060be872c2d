package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/barbelltracker/internal/telemetry/metrics"
	"github.com/2beens/barbelltracker/internal/telemetry/tracing"
	"github.com/2beens/barbelltracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

const TokenHeader = "X-TRACKER-TOKEN"

type tokenChecker interface {
	Valid(token string) bool
}

// BcryptTokenChecker compares write tokens against a bcrypt hash.
type BcryptTokenChecker struct {
	hash string
}

func NewBcryptTokenChecker(hash string) *BcryptTokenChecker {
	return &BcryptTokenChecker{hash: hash}
}

func (c *BcryptTokenChecker) Valid(token string) bool {
	if c.hash == "" {
		return false
	}
	return pkg.CheckPasswordHash(token, c.hash)
}

type AuthMiddlewareHandler struct {
	checker              tokenChecker
	metrics              *metrics.Manager
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(checker tokenChecker, metricsManager *metrics.Manager) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		checker: checker,
		metrics: metricsManager,
		allowedPathsPrefixes: []string{
			// MCP tools are read only
			"/mcp",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthCheck lets reads through and requires the write token for everything else.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if r.Method == http.MethodGet || r.Method == http.MethodHead || h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(TokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				h.unauthorized(w)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !h.checker.Valid(authToken) {
				log.Warnf("[invalid token] [auth middleware] unauthorized %s %s from %s", r.Method, r.URL.Path, pkg.ReadUserIP(r))
				h.unauthorized(w)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

func (h *AuthMiddlewareHandler) unauthorized(w http.ResponseWriter) {
	if h.metrics != nil {
		h.metrics.CounterUnauthorized.Inc()
	}
	http.Error(w, "no can do", http.StatusUnauthorized)
}
