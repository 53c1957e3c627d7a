package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"video-catalog/cmd/config"
	"video-catalog/pkg/auth"
	"video-catalog/pkg/database"
	"video-catalog/pkg/models"
)

// setupTest gives every test a fresh in-memory database.
func setupTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.SessionTTL = time.Hour
	require.NoError(t, database.Init("sqlite3", ":memory:"))
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(CORS())
	r.Use(RequestID())
	r.Any("/auth", Auth)
	r.Any("/seed-data", SeedData)
	r.Any("/videos", Videos)
	r.Any("/videos/images", UploadImage)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, target, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createUser(t *testing.T, username, password string, admin bool) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		PasswordHash: auth.HashPassword(password),
		IsAdmin:      admin,
	}
	require.NoError(t, database.DB.Create(user).Error)
	return user
}

func sessionFor(t *testing.T, user *models.User) string {
	t.Helper()
	session, err := auth.StartSession(database.DB, user, time.Hour)
	require.NoError(t, err)
	return session.Token
}

func adminToken(t *testing.T) string {
	t.Helper()
	return sessionFor(t, createUser(t, "admin", "hunter2", true))
}
