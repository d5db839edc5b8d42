package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/recipebox-api/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAPITest(t *testing.T) *gin.Engine {
	t.Helper()
	database.SetupTest(t)
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func registerAndLogin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/users", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = doJSON(t, router, http.MethodPost, "/api/v1/users/token", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	token, _ := decodeBody(t, resp)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterNormalizesEmailAndIssuesToken(t *testing.T) {
	router := setupAPITest(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/users", "", gin.H{
		"email": "a@B.COM", "password": "secret123", "name": "A",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "a@b.com", data["email"])

	resp = doJSON(t, router, http.MethodPost, "/api/v1/users/token", "", gin.H{
		"email": "a@B.COM", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, decodeBody(t, resp)["token"])
}

func TestRegisterShortPassword(t *testing.T) {
	router := setupAPITest(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/users", "", gin.H{
		"email": "a@example.com", "password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestTokenBadCredentials(t *testing.T) {
	router := setupAPITest(t)
	registerAndLogin(t, router, "a@example.com", "secret123")

	for _, password := range []string{"wrongpass1", ""} {
		resp := doJSON(t, router, http.MethodPost, "/api/v1/users/token", "", gin.H{
			"email": "a@example.com", "password": password,
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		_, hasToken := decodeBody(t, resp)["token"]
		assert.False(t, hasToken, "failed auth must not return a token field")
	}
}

func TestMeEndpoint(t *testing.T) {
	router := setupAPITest(t)
	token := registerAndLogin(t, router, "me@example.com", "secret123")

	// Unauthenticated access is rejected
	resp := doJSON(t, router, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "me@example.com", data["email"])

	// Profile updates go through PATCH; POST is not an allowed method
	resp = doJSON(t, router, http.MethodPost, "/api/v1/users/me", token, gin.H{"name": "X"})
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)

	resp = doJSON(t, router, http.MethodPatch, "/api/v1/users/me", token, gin.H{"name": "Renamed"})
	require.Equal(t, http.StatusOK, resp.Code)
	data = decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Renamed", data["name"])
}

func TestRecipeLifecycle(t *testing.T) {
	router := setupAPITest(t)
	token := registerAndLogin(t, router, "cook@example.com", "secret123")

	// Duplicate tag names in the payload collapse to one tag
	resp := doJSON(t, router, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"title":        "T",
		"time_minutes": 5,
		"price":        "1.50",
		"tags":         []gin.H{{"name": "X"}, {"name": "X"}},
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	data := decodeBody(t, resp)["data"].(map[string]any)
	recipeID := data["id"].(float64)
	tags := data["tags"].([]any)
	require.Len(t, tags, 1)
	assert.Equal(t, "X", tags[0].(map[string]any)["name"])

	// List representation has no description field
	resp = doJSON(t, router, http.MethodGet, "/api/v1/recipes", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	items := decodeBody(t, resp)["data"].([]any)
	require.Len(t, items, 1)
	_, hasDescription := items[0].(map[string]any)["description"]
	assert.False(t, hasDescription)

	// Detail representation does
	detailPath := "/api/v1/recipes/" + jsonNumber(recipeID)
	resp = doJSON(t, router, http.MethodGet, detailPath, token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	detail := decodeBody(t, resp)["data"].(map[string]any)
	_, hasDescription = detail["description"]
	assert.True(t, hasDescription)

	// PATCH with an explicit empty tag list clears membership
	resp = doJSON(t, router, http.MethodPatch, detailPath, token, gin.H{"tags": []gin.H{}})
	require.Equal(t, http.StatusOK, resp.Code)
	detail = decodeBody(t, resp)["data"].(map[string]any)
	assert.Empty(t, detail["tags"])

	// PATCH without the key leaves everything else alone
	resp = doJSON(t, router, http.MethodPatch, detailPath, token, gin.H{"title": "x"})
	require.Equal(t, http.StatusOK, resp.Code)
	detail = decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "x", detail["title"])

	resp = doJSON(t, router, http.MethodDelete, detailPath, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, router, http.MethodGet, detailPath, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRecipeRequiresAuth(t *testing.T) {
	router := setupAPITest(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/recipes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/v1/recipes", "", gin.H{
		"title": "T", "time_minutes": 5, "price": "1.50",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCrossOwnerAccessIs404(t *testing.T) {
	router := setupAPITest(t)
	ownerToken := registerAndLogin(t, router, "owner@example.com", "secret123")
	intruderToken := registerAndLogin(t, router, "intruder@example.com", "secret123")

	resp := doJSON(t, router, http.MethodPost, "/api/v1/recipes", ownerToken, gin.H{
		"title": "Private", "time_minutes": 5, "price": "1.50",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	recipeID := decodeBody(t, resp)["data"].(map[string]any)["id"].(float64)
	path := "/api/v1/recipes/" + jsonNumber(recipeID)

	resp = doJSON(t, router, http.MethodGet, path, intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	resp = doJSON(t, router, http.MethodPatch, path, intruderToken, gin.H{"title": "hacked"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
	resp = doJSON(t, router, http.MethodDelete, path, intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	// The intruder's list never shows the owner's rows
	resp = doJSON(t, router, http.MethodGet, "/api/v1/recipes", intruderToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, decodeBody(t, resp)["data"])

	// Still intact for the owner
	resp = doJSON(t, router, http.MethodGet, path, ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Private", decodeBody(t, resp)["data"].(map[string]any)["title"])
}

func TestTagListAssignedOnlyQuery(t *testing.T) {
	router := setupAPITest(t)
	token := registerAndLogin(t, router, "cook@example.com", "secret123")

	resp := doJSON(t, router, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"title": "One", "time_minutes": 5, "price": "1.50",
		"tags": []gin.H{{"name": "Assigned"}},
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	resp = doJSON(t, router, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"title": "Two", "time_minutes": 5, "price": "1.50",
		"tags": []gin.H{{"name": "Assigned"}},
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/tags?assigned_only=1", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	tags := decodeBody(t, resp)["data"].([]any)
	require.Len(t, tags, 1, "a tag on two recipes must be listed once")
	assert.Equal(t, "Assigned", tags[0].(map[string]any)["name"])
}

func TestAdminUsersRequiresStaff(t *testing.T) {
	router := setupAPITest(t)
	token := registerAndLogin(t, router, "plain@example.com", "secret123")

	resp := doJSON(t, router, http.MethodGet, "/api/v1/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

// jsonNumber renders a decoded JSON number as its integer path segment
func jsonNumber(n float64) string {
	return strconv.FormatUint(uint64(n), 10)
}
