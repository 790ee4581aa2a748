package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/fruitie/internal/logging"
	"github.com/dmitrijs2005/fruitie/internal/server/assistant"
	"github.com/dmitrijs2005/fruitie/internal/server/config"
	"github.com/dmitrijs2005/fruitie/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fruitie/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newStack wires the real services over a temporary SQLite database.
func newStack(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	db, m, err := repomanager.Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "fruitie.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, m.RunMigrations(ctx, db))

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BcryptCost = bcrypt.MinCost

	store, err := services.NewCredentialStore(db, m, cfg.BcryptCost)
	require.NoError(t, err)

	l := logging.NewNopLogger()
	us := services.NewUserService(db, m, store, cfg)
	cs := services.NewChatService(assistant.CannedReplier{}, time.Second, l)

	srv := httptest.NewServer(NewHTTPServer(":0", l, us, cs, cfg.AllowedOrigins).Router())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body, token string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var m map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return resp.StatusCode, m
}

func TestScenario_RegisterLoginProfile(t *testing.T) {
	srv := newStack(t)

	status, body := call(t, srv, http.MethodPost, "/api/auth/register", `{"name":"Ana","email":"ana@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "user", body["role"])

	status, _ = call(t, srv, http.MethodPost, "/api/auth/register", `{"name":"Ana","email":"ANA@x.com","password":"secret1"}`, "")
	assert.Equal(t, http.StatusConflict, status)

	status, body = call(t, srv, http.MethodPost, "/api/auth/login", `{"email":"ana@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	status, body = call(t, srv, http.MethodGet, "/api/profile", "", token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ana", body["name"])
	assert.Equal(t, "ana@x.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")

	status, _ = call(t, srv, http.MethodGet, "/api/profile", "", token+"x")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = call(t, srv, http.MethodPatch, "/api/profile", `{"password":"another1"}`, token)
	require.Equal(t, http.StatusOK, status, body)

	status, _ = call(t, srv, http.MethodPost, "/api/auth/login", `{"email":"ana@x.com","password":"secret1"}`, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = call(t, srv, http.MethodPost, "/api/auth/login", `{"email":"ana@x.com","password":"another1"}`, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestScenario_AIChat(t *testing.T) {
	srv := newStack(t)

	status, body := call(t, srv, http.MethodPost, "/api/ai-chat", `{"message":"hello","page":"seller"}`, "")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["reply"])

	status, body = call(t, srv, http.MethodPost, "/api/ai-chat", `{"message":"  ","page":"seller"}`, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["fields"], "message")
}
