package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/config"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/database"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the real routes over an in-memory store.
func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	issuer, err := token.NewIssuer("test-secret")
	require.NoError(t, err)

	a := &App{
		cfg:    &config.AppConfig{Port: 5000, Env: "development", JWTSecret: "test-secret"},
		router: gin.New(),
		db:     db,
		issuer: issuer,
		logger: zap.NewNop(),
	}
	a.registerRoutes()
	return a
}

func doJSON(t *testing.T, a *App, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSignupLoginAndGuardedAccess(t *testing.T) {
	a := newTestApp(t)

	// Signup.
	w := doJSON(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	signup := decode(t, w)
	assert.NotEmpty(t, signup["token"])

	// Login.
	w = doJSON(t, a, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decode(t, w)
	tok, _ := login["token"].(string)
	require.NotEmpty(t, tok)

	// Guarded list with the credential.
	w = doJSON(t, a, http.MethodGet, "/api/movies", tok, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	list := decode(t, w)
	assert.Equal(t, float64(0), list["total"])
	assert.Equal(t, false, list["hasMore"])

	// Guarded list without a credential.
	w = doJSON(t, a, http.MethodGet, "/api/movies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong password and unknown email answer identically.
	wrongPw := doJSON(t, a, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "a@x.com",
		"password": "wrong",
	})
	unknown := doJSON(t, a, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestSignupValidationAndDuplicates(t *testing.T) {
	a := newTestApp(t)

	w := doJSON(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "not-an-email",
		"password": "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation failed", body["error"])
	assert.Len(t, body["details"], 2)

	w = doJSON(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "A@X.COM",
		"password": "secret2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMovieCRUDFlow(t *testing.T) {
	a := newTestApp(t)

	w := doJSON(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	tok, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, tok)

	// Create.
	w = doJSON(t, a, http.MethodPost, "/api/movies", tok, gin.H{
		"title":    "Inception",
		"type":     "Movie",
		"director": "Christopher Nolan",
		"duration": "148 min",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	id := strconv.Itoa(int(created["id"].(float64)))
	assert.Equal(t, "Inception", created["title"])

	// Update.
	w = doJSON(t, a, http.MethodPut, "/api/movies/"+id, tok, gin.H{
		"title":     "Inception",
		"type":      "Movie",
		"director":  "Christopher Nolan",
		"year_time": "2010",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "2010", decode(t, w)["year_time"])

	// Validation failure on update.
	w = doJSON(t, a, http.MethodPut, "/api/movies/"+id, tok, gin.H{
		"title": "",
		"type":  "Movie",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Delete, then the entry is gone.
	w = doJSON(t, a, http.MethodDelete, "/api/movies/"+id, tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, a, http.MethodDelete, "/api/movies/"+id, tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMeAndLogout(t *testing.T) {
	a := newTestApp(t)

	w := doJSON(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	tok, _ := decode(t, w)["token"].(string)

	w = doJSON(t, a, http.MethodGet, "/api/auth/me", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", decode(t, w)["email"])

	w = doJSON(t, a, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)

	w := doJSON(t, a, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}
