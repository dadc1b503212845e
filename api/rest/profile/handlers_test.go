package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/taskboard/server/internal/auth"
	"codeberg.org/taskboard/server/taskboard/users"
)

type fakeUserStore struct {
	users map[string]*users.User

	findCalls   int
	updateCalls int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*users.User)}
}

func (f *fakeUserStore) FindByID(_ context.Context, userID string) (*users.User, error) {
	f.findCalls++

	user, ok := f.users[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	return user, nil
}

func (f *fakeUserStore) UpdateName(_ context.Context, userID, name string) (*users.User, error) {
	f.updateCalls++

	user, ok := f.users[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	user.Name = name

	return user, nil
}

func setupProfileRouter(store UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api"), store)

	return router
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()

	token, err := auth.GenerateJWT(userID, userID+"@example.com")
	require.NoError(t, err)

	return "Bearer " + token
}

func TestGetProfile_RequiresAuth(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "test-secret-key-for-testing")
	store := newFakeUserStore()
	router := setupProfileRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, store.findCalls, "storage must not be touched without a verified token")
}

func TestGetProfile_ReturnsOwnRecord(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "test-secret-key-for-testing")
	store := newFakeUserStore()
	store.users["user-1"] = &users.User{ID: "user-1", Email: "u1@example.com", Name: "u1"}
	router := setupProfileRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got users.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "u1@example.com", got.Email)
}

func TestGetProfile_MissingRecord(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "test-secret-key-for-testing")
	router := setupProfileRouter(newFakeUserStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", bearerToken(t, "ghost"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "profile not found")
}

func TestUpdateProfile_Success(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "test-secret-key-for-testing")
	store := newFakeUserStore()
	store.users["user-1"] = &users.User{ID: "user-1", Email: "u1@example.com", Name: "old"}
	router := setupProfileRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name":"New Name"}`))
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got users.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "New Name", store.users["user-1"].Name)
}

func TestUpdateProfile_Idempotent(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "test-secret-key-for-testing")
	store := newFakeUserStore()
	store.users["user-1"] = &users.User{ID: "user-1", Email: "u1@example.com", Name: "old"}
	router := setupProfileRouter(store)

	put := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name":"New Name"}`))
		req.Header.Set("Authorization", bearerToken(t, "user-1"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		return w
	}

	first := put()
	require.Equal(t, http.StatusOK, first.Code)

	second := put()
	require.Equal(t, http.StatusOK, second.Code)

	// repeating the same PUT yields the same response and the same stored record
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "New Name", store.users["user-1"].Name)
	assert.Equal(t, 2, store.updateCalls)
}

func TestUpdateProfile_RejectsInvalidBody(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "test-secret-key-for-testing")
	store := newFakeUserStore()
	store.users["user-1"] = &users.User{ID: "user-1", Name: "old"}
	router := setupProfileRouter(store)

	bodies := []string{
		`{}`,
		`{"name":""}`,
		`{"name":"` + strings.Repeat("x", 101) + `"}`,
		`not json`,
	}

	for _, body := range bodies {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(body))
		req.Header.Set("Authorization", bearerToken(t, "user-1"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q should be rejected", body)
	}

	assert.Zero(t, store.updateCalls)
	assert.Equal(t, "old", store.users["user-1"].Name)
}
