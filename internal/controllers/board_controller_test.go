package controllers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashd/internal/models"
	"dashd/internal/services"
	"dashd/internal/structures"
	"dashd/internal/testutil"
)

func newBoardRouter(t *testing.T) (http.Handler, services.BoardServiceInterface) {
	t.Helper()
	conf := &structures.Config{
		Board: structures.BoardConfig{
			Enabled:  true,
			FilePath: filepath.Join(t.TempDir(), "board-posts.json"),
		},
	}
	svc := services.NewBoardService(conf, &testutil.MockLogger{})
	bc := NewBoardController(&testutil.MockLogger{}, svc)

	r := chi.NewRouter()
	r.Get("/api/v1/board/posts", bc.ListPosts)
	r.Post("/api/v1/board/posts", bc.CreatePost)
	r.Get("/api/v1/board/posts/{id}", bc.GetPost)
	r.Put("/api/v1/board/posts/{id}", bc.UpdatePost)
	r.Delete("/api/v1/board/posts/{id}", bc.DeletePost)
	return r, svc
}

func do(t *testing.T, handler http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestBoardController_CreatePost(t *testing.T) {
	handler, _ := newBoardRouter(t)

	rr := do(t, handler, http.MethodPost, "/api/v1/board/posts", `{"title":"Welcome","content":"First post"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Welcome", post.Title)
	assert.Equal(t, services.BoardAuthor, post.Author)
}

func TestBoardController_CreatePost_InvalidBody(t *testing.T) {
	handler, _ := newBoardRouter(t)

	rr := do(t, handler, http.MethodPost, "/api/v1/board/posts", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBoardController_CreatePost_EmptyTitle(t *testing.T) {
	handler, _ := newBoardRouter(t)

	rr := do(t, handler, http.MethodPost, "/api/v1/board/posts", `{"title":"  ","content":"x"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "title is required", body["error"])
}

func TestBoardController_ListPosts(t *testing.T) {
	handler, svc := newBoardRouter(t)
	svc.CreatePost("One", "a")
	svc.CreatePost("Two", "b")

	rr := do(t, handler, http.MethodGet, "/api/v1/board/posts", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var posts []models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	assert.Len(t, posts, 2)
}

func TestBoardController_GetPost(t *testing.T) {
	handler, svc := newBoardRouter(t)
	created := svc.CreatePost("Welcome", "First post")

	rr := do(t, handler, http.MethodGet, "/api/v1/board/posts/"+created.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	assert.Equal(t, created.ID, post.ID)
	assert.Equal(t, 1, post.Views)
}

func TestBoardController_GetPost_NotFound(t *testing.T) {
	handler, _ := newBoardRouter(t)

	rr := do(t, handler, http.MethodGet, "/api/v1/board/posts/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBoardController_UpdatePost(t *testing.T) {
	handler, svc := newBoardRouter(t)
	created := svc.CreatePost("Welcome", "First post")

	rr := do(t, handler, http.MethodPut, "/api/v1/board/posts/"+created.ID, `{"title":"Edited","content":"New"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	assert.Equal(t, "Edited", post.Title)
}

func TestBoardController_UpdatePost_NotFound(t *testing.T) {
	handler, _ := newBoardRouter(t)

	rr := do(t, handler, http.MethodPut, "/api/v1/board/posts/no-such-id", `{"title":"x","content":"y"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBoardController_DeletePost(t *testing.T) {
	handler, svc := newBoardRouter(t)
	created := svc.CreatePost("Welcome", "First post")

	rr := do(t, handler, http.MethodDelete, "/api/v1/board/posts/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 0, svc.Count())

	rr = do(t, handler, http.MethodDelete, "/api/v1/board/posts/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
