package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/developia-II/catalog-api/internal/adapters/repository/memory"
	"github.com/developia-II/catalog-api/internal/services/catalog"
	"github.com/developia-II/catalog-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testServer struct {
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T, configure ...func(*Dependencies)) *testServer {
	t.Helper()

	tokens, err := utils.NewTokenService(testSecret, 0)
	require.NoError(t, err)
	token, err := tokens.GenerateToken(utils.Identity{UserID: "u-1", Email: "admin@example.com"})
	require.NoError(t, err)

	deps := Dependencies{
		Catalog:        catalog.NewService(memory.NewCategoryRepository(), memory.NewSubcategoryRepository(), nil),
		Tokens:         tokens,
		Collections:    memory.Collections{},
		AllowedOrigins: []string{"http://localhost:3000"},
		RequestTimeout: time.Second,
		DebugRoutes:    true,
	}
	for _, fn := range configure {
		fn(&deps)
	}
	return &testServer{router: NewRouter(deps), token: token}
}

// do sends body as JSON. An empty token sends no Authorization header.
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// createCategory posts a category and returns its id.
func (s *testServer) createCategory(t *testing.T, name string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/categories", s.token, gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["id"].(string)
}

func (s *testServer) createSubcategory(t *testing.T, name, categoryID string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/subcategories", s.token, gin.H{"name": name, "categoryId": categoryID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["id"].(string)
}
