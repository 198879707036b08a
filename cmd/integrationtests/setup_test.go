package integrationtests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	admin "foodexchange-admin/internal/adminService"
	"foodexchange-admin/internal/config"
	"foodexchange-admin/internal/connections"
	"foodexchange-admin/internal/marketapi"
	model "foodexchange-admin/internal/models"
	"foodexchange-admin/internal/server"
	"foodexchange-admin/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	cookieName    = "fx_session"
	adminEmail    = "admin@foodexchange.lk"
	adminPassword = "secret"
)

// testApp is the full gateway wired to a fake marketplace
type testApp struct {
	router *gin.Engine
	market *fakeMarket
	cookie *http.Cookie
}

// SetupTestApp wires config, the SQLite session store, the marketplace
// client, the service and the router the way serve does
func SetupTestApp(t *testing.T, market *fakeMarket) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := market.start(t)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := config.DefaultConfig()
	cfg.Market.BaseURL = srv.URL
	cfg.Market.Timeout = "2s"
	cfg.Session.DBPath = filepath.Join(t.TempDir(), "sessions.db")
	cfg.Auth.Accounts = []config.Account{{
		Email: adminEmail, PasswordHash: string(hash), Role: "admin", FirstName: "Kamal", LastName: "Perera", UserID: 1,
	}}
	require.NoError(t, cfg.Validate())

	timeout, _ := cfg.MarketTimeout()
	ttl, _ := cfg.SessionTTL()

	store, err := session.OpenSQLite(cfg.Session.DBPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	client := marketapi.NewClient(cfg.Market.BaseURL, timeout)
	svc := admin.NewAdminService(client, store, session.NewAuthenticator(cfg.Auth.Accounts), connections.NewMemoryStore(), admin.Options{
		PageSize:           cfg.Directory.PageSize,
		MaxParallelFetches: cfg.Market.MaxParallelFetches,
		MaxImageBytes:      cfg.Feed.MaxImageBytes,
		SessionTTL:         ttl,
	})
	router := server.SetupRouter(svc, store, server.Options{
		CookieName:     cfg.Session.CookieName,
		SessionTTL:     ttl,
		MaxUploadBytes: cfg.Feed.MaxImageBytes,
	})
	return &testApp{router: router, market: market}
}

// Do executes a request carrying the app's session cookie and keeps any
// cookie the gateway hands back
func (a *testApp) Do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			a.cookie = c
			if c.MaxAge < 0 {
				a.cookie = nil
			}
		}
	}
	return w
}

// ExecuteRequestAndParse executes a JSON request and parses the envelope
func (a *testApp) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := a.Do(t, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Login signs the app's session in as the configured operator
func (a *testApp) Login(t *testing.T) {
	t.Helper()
	_, w := a.ExecuteRequestAndParse(t, http.MethodPost, "/auth/login", map[string]string{"email": adminEmail, "password": adminPassword})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, a.cookie)
}

func at(day, hour int) model.LocalTime {
	return model.LocalTime{Time: time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC)}
}
