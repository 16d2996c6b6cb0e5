package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"KanbanWebService/response"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestCORSAnswersOptions(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/anything/at/all", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if called {
		t.Fatal("OPTIONS reached the wrapped handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, PATCH, DELETE, OPTIONS" {
		t.Fatalf("Allow-Methods = %q", got)
	}
}

func TestCORSHeadersOnRegularRequests(t *testing.T) {
	rec := httptest.NewRecorder()
	CORS(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	if rec.Header().Get("Access-Control-Allow-Headers") != "Content-Type" {
		t.Fatalf("missing Allow-Headers on GET: %v", rec.Header())
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/tasks/abc", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if called {
		t.Fatal("preflight reached the wrapped handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != http.MethodPatch {
		t.Fatalf("Allow-Methods = %q, want PATCH", got)
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "300" {
		t.Fatalf("Max-Age = %q, want 300", got)
	}
}

func TestCORSActualRequestWithOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	CORS(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Allow-Origin = %q", got)
	}
	if !strings.Contains(strings.Join(rec.Header().Values("Vary"), ","), "Origin") {
		t.Fatalf("Vary = %v, want Origin", rec.Header().Values("Vary"))
	}
}

func TestRateLimitRejectsOverBurst(t *testing.T) {
	h := RateLimit(NewLimiter(0.001, 2))(http.HandlerFunc(okHandler))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	var msg response.Message
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Status != "Request Failed" {
		t.Fatalf("message = %+v", msg)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	if NewLimiter(0, 10) != nil {
		t.Fatal("NewLimiter(0) should disable limiting")
	}
	h := RateLimit(nil)(http.HandlerFunc(okHandler))
	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
}

func TestRecovererHidesPanic(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	h := Recoverer(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("database password is hunter2")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body response.Error
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "internal server error" {
		t.Fatalf("body = %+v", body)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("panic was not logged: %+v", entry)
	}
	if entry.Data["panic"] != "database password is hunter2" {
		t.Fatalf("panic field = %v", entry.Data["panic"])
	}
}

func TestLoggerLevels(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	h := Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tasks", nil))
	if e := hook.LastEntry(); e.Level != logrus.InfoLevel || e.Data["status"] != http.StatusOK {
		t.Fatalf("entry = %+v", e)
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	if e := hook.LastEntry(); e.Level != logrus.WarnLevel || e.Data["status"] != http.StatusNotFound {
		t.Fatalf("entry = %+v", e)
	}
}

func TestMetricsCountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/tasks/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/tasks", okHandler)

	for _, path := range []string{"/tasks/a", "/tasks/b", "/tasks", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.endpointCalls.WithLabelValues("/tasks/{id}", http.MethodGet)); got != 2 {
		t.Fatalf("calls for /tasks/{id} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.endpointCalls.WithLabelValues("/tasks", http.MethodGet)); got != 1 {
		t.Fatalf("calls for /tasks = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues("/tasks/{id}", http.MethodGet, "404")); got != 2 {
		t.Fatalf("errors for /tasks/{id} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues("unmatched", http.MethodGet, "404")); got != 1 {
		t.Fatalf("errors for unmatched = %v, want 1", got)
	}
}

func TestNewMetricsRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetrics(reg); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Fatal("second registration should fail")
	}
}
