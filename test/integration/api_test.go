// Package integration provides end-to-end integration tests for the authgate API.
// Tests run against both PostgreSQL and MySQL databases.
package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/authgate/internal/app"
	authDomain "github.com/allisson/authgate/internal/auth/domain"
	"github.com/allisson/authgate/internal/config"
	"github.com/allisson/authgate/internal/database"
	"github.com/allisson/authgate/internal/testutil"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container *app.Container
	db        *sql.DB
	server    *httptest.Server
	dbDriver  string
	userID    uuid.UUID
	token     string
}

// makeRequest performs a GET request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	path string,
	setup func(req *http.Request),
) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ctx.server.URL+path, nil)
	require.NoError(t, err, "failed to create request")
	if setup != nil {
		setup(req)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// setupIntegrationTest migrates the database, creates a user with a token and starts the API.
func setupIntegrationTest(t *testing.T, dbDriver string) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db := testutil.SetupDB(t, dbDriver)
	dsn := testutil.DSN(t, dbDriver)

	cfg := &config.Config{
		DBDriver:             dbDriver,
		DBConnectionString:   dsn,
		DBMaxOpenConnections: 10,
		DBMaxIdleConnections: 5,
		DBConnMaxLifetime:    time.Hour,
		ServerHost:           "localhost",
		ServerPort:           8080,
		LogLevel:             "error",
		AuthTokenExpiration:  time.Hour,
		AuthTokenDelayMin:    200 * time.Millisecond,
		AuthTokenDelayMax:    400 * time.Millisecond,
		SessionBackend:       config.SessionBackendDatabase,
		SessionCookieName:    "session_id",
	}

	container := app.NewContainer(cfg)

	userID := testutil.CreateTestUser(t, db, dbDriver, "alice")

	tokenUseCase, err := container.TokenUseCase()
	require.NoError(t, err, "failed to get token use case")

	output, err := tokenUseCase.Issue(context.Background(), &authDomain.IssueTokenInput{Username: "alice"})
	require.NoError(t, err, "failed to issue token")
	require.Equal(t, userID, output.UserID)

	serverCtx, cancel := context.WithCancel(context.Background())
	httpSrv, err := container.HTTPServer(serverCtx)
	require.NoError(t, err, "failed to get http server")

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil after SetupRouter")

	testServer := httptest.NewServer(handler)

	t.Cleanup(func() {
		testServer.Close()
		cancel()
		_ = container.Shutdown(context.Background())
	})

	return &integrationTestContext{
		container: container,
		db:        db,
		server:    testServer,
		dbDriver:  dbDriver,
		userID:    userID,
		token:     output.PlainToken,
	}
}

func TestIntegration_Authentication(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	for _, driver := range []string{database.DriverPostgres, database.DriverMySQL} {
		t.Run(driver, func(t *testing.T) {
			ctx := setupIntegrationTest(t, driver)

			t.Run("valid token in query string", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, "/v1/me?auth_token="+ctx.token, nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var got map[string]any
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, ctx.userID.String(), got["user_id"])
				assert.Equal(t, "alice", got["username"])
			})

			t.Run("valid bearer token", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, "/v1/me", func(req *http.Request) {
					req.Header.Set("Authorization", "Bearer "+ctx.token)
				})
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			})

			t.Run("unknown token is delayed and rejected", func(t *testing.T) {
				start := time.Now()
				resp, body := ctx.makeRequest(t, "/v1/me?auth_token=does-not-exist", nil)
				elapsed := time.Since(start)

				assert.Equal(t, 419, resp.StatusCode)
				assert.JSONEq(t, `{"error":"Could not authenticate with token. Token invalid."}`, string(body))
				assert.GreaterOrEqual(t, elapsed, 200*time.Millisecond)
			})

			t.Run("no token is rejected without delay", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, "/v1/me", nil)
				assert.Equal(t, 419, resp.StatusCode)
				assert.JSONEq(t, `{"error":"Could not authenticate with token. Token invalid."}`, string(body))
			})

			t.Run("expired token", func(t *testing.T) {
				tokenUseCase, err := ctx.container.TokenUseCase()
				require.NoError(t, err)
				output, err := tokenUseCase.Issue(context.Background(), &authDomain.IssueTokenInput{
					Username: "alice",
					TTL:      time.Millisecond,
				})
				require.NoError(t, err)
				time.Sleep(10 * time.Millisecond)

				resp, body := ctx.makeRequest(t, "/v1/me?auth_token="+output.PlainToken, nil)
				assert.Equal(t, 419, resp.StatusCode)
				assert.JSONEq(t, `{"error":"Authentication token expired."}`, string(body))
			})

			t.Run("session takes precedence over token", func(t *testing.T) {
				sessionID := testutil.CreateTestSession(t, ctx.db, ctx.dbDriver, ctx.userID, time.Hour)

				resp, _ := ctx.makeRequest(t, "/v1/me?auth_token=does-not-exist", func(req *http.Request) {
					req.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID.String()})
				})
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			})

			t.Run("routes declare the token parameter", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, "/v1/routes", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Contains(t, string(body), `"auth_token"`)
			})

			t.Run("readiness", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, "/ready", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			})
		})
	}
}
