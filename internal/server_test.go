package internal

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/barbelltracker/internal/config"
	"github.com/2beens/barbelltracker/internal/middleware"
	"github.com/2beens/barbelltracker/internal/progression"
	"github.com/2beens/barbelltracker/internal/telemetry/metrics"
	"github.com/2beens/barbelltracker/internal/tracker"
	"github.com/2beens/barbelltracker/pkg"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.Default()
	cfg.AllowedOrigins = []string{"https://tracker.example.com"}

	engine, err := progression.NewEngine(cfg.Program)
	require.NoError(t, err)

	hash, err := pkg.HashPassword("lift-heavy")
	require.NoError(t, err)

	// no expectations set, nothing here reaches the rate limiter
	rdb, redisMock := redismock.NewClientMock()
	t.Cleanup(func() {
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	metricsManager := metrics.NewTestManager()
	return &Server{
		config:         &cfg,
		versionInfo:    "v1.2.3",
		redisClient:    rdb,
		trackerService: tracker.NewService(nil, engine, nil, 0, metricsManager),
		tokenChecker:   middleware.NewBcryptTokenChecker(hash),
		metricsManager: metricsManager,
		otelShutdown:   func() {},
	}
}

func serve(router http.Handler, method, target, origin, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(`{"exercise":"Squat"}`))
	req.Header.Set("Content-Type", pkg.ContentType.JSON)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestServer_Version(t *testing.T) {
	router := newTestServer(t).routerSetup()

	rr := serve(router, http.MethodGet, "/version", "https://tracker.example.com", "")
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", string(body))
	assert.Equal(t, "https://tracker.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_UnknownPath(t *testing.T) {
	router := newTestServer(t).routerSetup()

	rr := serve(router, http.MethodGet, "/bench-press-secrets", "https://tracker.example.com", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServer_CorsForbidden(t *testing.T) {
	router := newTestServer(t).routerSetup()

	rr := serve(router, http.MethodGet, "/version", "https://elsewhere.example.com", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestServer_Options(t *testing.T) {
	router := newTestServer(t).routerSetup()

	rr := serve(router, http.MethodOptions, "/tracker/entries", "https://tracker.example.com", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "GET, POST, PUT, OPTIONS", rr.Header().Get("Allow"))
}

func TestServer_WritesNeedToken(t *testing.T) {
	s := newTestServer(t)
	router := s.routerSetup()

	rr := serve(router, http.MethodPost, "/tracker/entries", "https://tracker.example.com", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(router, http.MethodPut, "/tracker/entries/3", "https://tracker.example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(router, http.MethodPost, "/bodyweight", "https://tracker.example.com", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
