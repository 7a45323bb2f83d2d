//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/yarnstash-backend/internal/app"
	"github.com/heartmarshall/yarnstash-backend/internal/config"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/transport/middleware"
	"github.com/heartmarshall/yarnstash-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	svcs   *app.Services
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		// Drive OAuth stays unconfigured: every user starts disconnected.
		Drive: config.DriveConfig{
			FrontendURL:   "http://frontend.test",
			CallTimeout:   5 * time.Second,
			RootFolder:    "Yarn Management",
			SubfoldersRaw: "Patterns,Backups",
		},
		Activity: config.ActivityConfig{DefaultLimit: 20, MaxLimit: 100},
		Backup: config.BackupConfig{
			DefaultKeepCount: 10,
			FolderName:       "Backups",
			PatternsFolder:   "Patterns",
			MaxUploadBytes:   1 << 20,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{BackupPerMinute: 2},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	svcs := app.NewServices(cfg, pool, logger)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	mux := http.NewServeMux()
	rest.NewRouter(mux, rest.Handlers{
		Health:   rest.NewHealthHandler("test-version", map[string]rest.Pinger{"database": pool}),
		Activity: rest.NewActivityHandler(svcs.Activity, logger),
		Drive:    rest.NewDriveHandler(svcs.Drive, cfg.Drive.FrontendURL, cfg.Backup.MaxUploadBytes, logger),
		Backup:   rest.NewBackupHandler(svcs.Backup, cfg.Backup.DefaultKeepCount, cfg.Backup.MaxUploadBytes, logger),
		Shopping: rest.NewShoppingHandler(svcs.Shopping, logger),
	}, rest.Guards{
		Protect:  middleware.RequireUser,
		Throttle: limiter.Limit(cfg.RateLimit.BackupPerMinute),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svcs.JWT),
		middleware.Logger(logger),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		svcs:   svcs,
	}
}

// createUser inserts a fresh user and returns its id and a bearer token.
func (ts *testServer) createUser(t *testing.T) (uuid.UUID, string) {
	t.Helper()

	u := &domain.User{Email: "e2e-" + uuid.NewString() + "@example.com", Name: "E2E"}
	require.NoError(t, ts.svcs.Users.Create(context.Background(), u))

	token, err := ts.svcs.JWT.GenerateAccessToken(u.ID)
	require.NoError(t, err)
	return u.ID, token
}

// do sends a request with an optional JSON body and bearer token and
// returns the response with its body read.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// doJSON is do plus decoding the response body into out.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string, out any) int {
	t.Helper()

	resp, raw := ts.do(t, method, path, body, token)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}
