package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/barbelltracker/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPanicRecovery(t *testing.T) {
	cases := []struct {
		name         string
		panics       bool
		expectedCode int
		expectedRecs float64
	}{
		{name: "handler returns", panics: false, expectedCode: http.StatusOK, expectedRecs: 0},
		{name: "handler panics", panics: true, expectedCode: http.StatusInternalServerError, expectedRecs: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			metricsManager := metrics.NewTestManager()

			next := &panicRecTestHandler{panic: tc.panics}
			r := mux.NewRouter()
			r.Handle("/tracker/summary", next).Name("summary")
			r.Use(PanicRecovery(metricsManager))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tracker/summary", nil))

			assert.True(t, next.called)
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.Equal(t, tc.expectedRecs, testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))
		})
	}
}

type panicRecTestHandler struct {
	panic  bool
	called bool
}

func (p *panicRecTestHandler) ServeHTTP(http.ResponseWriter, *http.Request) {
	p.called = true
	if p.panic {
		panic("bar slipped")
	}
}
