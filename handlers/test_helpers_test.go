package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"nextkey_landing_go/config"
	"nextkey_landing_go/middleware"
	"nextkey_landing_go/services"
	"nextkey_landing_go/services/leadapi"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// leadAPIStub is a fake lead intake API that records every request body
type leadAPIStub struct {
	mu       sync.Mutex
	requests []map[string]interface{}
	paths    []string

	status int
	body   string
}

func (s *leadAPIStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&payload)

	s.mu.Lock()
	s.requests = append(s.requests, payload)
	s.paths = append(s.paths, r.URL.Path)
	status, body := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (s *leadAPIStub) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *leadAPIStub) last() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

func newLeadAPI(t *testing.T, status int, body string) (*httptest.Server, *leadAPIStub) {
	stub := &leadAPIStub{status: status, body: body}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return srv, stub
}

func testConfig(apiURL string) *config.Config {
	return &config.Config{
		Environment:          "test",
		LeadAPIURL:           apiURL,
		LeadAPITimeout:       2 * time.Second,
		ParentStrategy:       config.StrategyNetwork,
		GeneralChildStrategy: config.StrategyNetwork,
		RobloxChildStrategy:  config.StrategyLocal,
		RobloxBasePath:       "/roblox",
	}
}

// setupServer mounts both sites against the lead API at cfg.LeadAPIURL
func setupServer(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(middleware.WithConfig(cfg))

	client := leadapi.NewClient(cfg.LeadAPIURL, cfg.LeadAPITimeout, nil)
	for _, site := range services.NewSites(cfg, services.SiteDeps{Client: client}) {
		RegisterSite(e, site)
	}
	return e
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", &config.Config{Environment: "test"})

	return e, c, rec
}

func do(t *testing.T, e *echo.Echo, method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	req.Host = "landing.example.com:8080"
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.NotNil(t, rec)
	return rec
}

func validParent() url.Values {
	return url.Values{
		"name":          {"Jane Doe"},
		"email":         {"jane@example.com"},
		"phone":         {"5551234567"},
		"stateLocation": {"Texas"},
		"description":   {"Strangers messaging my son"},
	}
}

func validChild() url.Values {
	return url.Values{
		"name":        {"Jane Doe"},
		"email":       {"jane@example.com"},
		"description": {"Someone asked for my password"},
	}
}
