package server

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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivolkov/syncpad/internal/server/handlers"
	"github.com/ivolkov/syncpad/internal/server/storage/sqlite"
	"github.com/ivolkov/syncpad/pkg/api"
)

// newTestServer поднимает router поверх in-memory SQLite
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := DefaultConfig()
	cfg.JWTSecret = []byte("test-secret")

	jwtConfig := handlers.JWTConfig{
		Secret:         cfg.JWTSecret,
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	router := NewRouter(cfg, logger, store, store, jwtConfig)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, data
}

// registerAndLogin регистрирует пользователя и возвращает access token
func registerAndLogin(t *testing.T, srv *httptest.Server, username string) string {
	t.Helper()

	resp, _ := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/v1/auth/register", "", api.RegisterRequest{
		Username: username,
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/v1/auth/login", "", api.LoginRequest{
		Username: username,
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokenResp api.TokenResponse
	require.NoError(t, json.Unmarshal(body, &tokenResp))
	require.NotEmpty(t, tokenResp.AccessToken)

	return tokenResp.AccessToken
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, srv.Client(), http.MethodGet, srv.URL+"/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health api.HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "ok", health.Status)
}

func TestServer_RegisterLoginPushFlow(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "alice")

	pushURL := srv.URL + "/api/v1/entities/project/p-1/push"

	// create
	resp, body := doJSON(t, srv.Client(), http.MethodPost, pushURL, token, api.PushRequest{
		Action:  "create",
		Payload: map[string]any{"title": "Alpha", "color": "red"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pushResp api.PushResponse
	require.NoError(t, json.Unmarshal(body, &pushResp))
	assert.Equal(t, api.PushStatusApplied, pushResp.Status)
	assert.Equal(t, int64(1), pushResp.Version)

	// update поверх актуальной версии
	resp, body = doJSON(t, srv.Client(), http.MethodPost, pushURL, token, api.PushRequest{
		Action:      "update",
		Payload:     map[string]any{"title": "Beta"},
		BaseVersion: 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &pushResp))
	assert.Equal(t, int64(2), pushResp.Version)

	// чтение состояния
	resp, body = doJSON(t, srv.Client(), http.MethodGet, srv.URL+"/api/v1/entities/project/p-1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entity api.EntityResponse
	require.NoError(t, json.Unmarshal(body, &entity))
	assert.Equal(t, int64(2), entity.Version)
	assert.Equal(t, "Beta", entity.State["title"])
	assert.Equal(t, "red", entity.State["color"])
}

func TestServer_PushConflictReturnsRemoteState(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "alice")

	pushURL := srv.URL + "/api/v1/entities/project/p-1/push"

	resp, _ := doJSON(t, srv.Client(), http.MethodPost, pushURL, token, api.PushRequest{
		Action:  "create",
		Payload: map[string]any{"title": "Alpha"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, srv.Client(), http.MethodPost, pushURL, token, api.PushRequest{
		Action:      "update",
		Payload:     map[string]any{"title": "Remote wins"},
		BaseVersion: 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Второе устройство пытается применить мутацию поверх устаревшей версии
	resp, body := doJSON(t, srv.Client(), http.MethodPost, pushURL, token, api.PushRequest{
		Action:      "update",
		Payload:     map[string]any{"title": "Stale local"},
		BaseVersion: 1,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var pushResp api.PushResponse
	require.NoError(t, json.Unmarshal(body, &pushResp))
	assert.Equal(t, api.PushStatusConflict, pushResp.Status)
	assert.Equal(t, int64(2), pushResp.RemoteVersion)
	assert.Equal(t, "Remote wins", pushResp.RemoteState["title"])
}

func TestServer_PushRequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/v1/entities/project/p-1/push", "", api.PushRequest{
		Action:  "create",
		Payload: map[string]any{"title": "Alpha"},
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_UsersAreIsolated(t *testing.T) {
	srv := newTestServer(t)
	tokenAlice := registerAndLogin(t, srv, "alice")
	tokenBob := registerAndLogin(t, srv, "bob")

	resp, _ := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/v1/entities/project/p-1/push", tokenAlice, api.PushRequest{
		Action:  "create",
		Payload: map[string]any{"title": "Private"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// bob не видит сущность alice
	resp, _ = doJSON(t, srv.Client(), http.MethodGet, srv.URL+"/api/v1/entities/project/p-1", tokenBob, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_GracefulShutdown(t *testing.T) {
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	defer store.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	cfg.JWTSecret = []byte("test-secret")
	cfg.ShutdownTimeout = time.Second

	srv := New(cfg, logger, store, store)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	// Даем серверу стартовать, затем останавливаем
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
