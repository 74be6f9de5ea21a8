package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"dashd/internal/providers"
	"dashd/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type BoardController struct {
	logger  providers.Logger
	service services.BoardServiceInterface
}

func NewBoardController(logger providers.Logger, service services.BoardServiceInterface) *BoardController {
	return &BoardController{
		logger:  logger,
		service: service,
	}
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (bc *BoardController) decodePost(w http.ResponseWriter, r *http.Request) (*postRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload postRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if strings.TrimSpace(payload.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return nil, false
	}
	return &payload, true
}

func (bc *BoardController) ListPosts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, bc.service.ListPosts())
}

func (bc *BoardController) GetPost(w http.ResponseWriter, r *http.Request) {
	post, ok := bc.service.GetPost(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (bc *BoardController) CreatePost(w http.ResponseWriter, r *http.Request) {
	payload, ok := bc.decodePost(w, r)
	if !ok {
		return
	}
	post := bc.service.CreatePost(payload.Title, payload.Content)
	bc.logger.Infof(providers.TypePost, "Created board post %s", post.ID)
	writeJSON(w, http.StatusCreated, post)
}

func (bc *BoardController) UpdatePost(w http.ResponseWriter, r *http.Request) {
	payload, ok := bc.decodePost(w, r)
	if !ok {
		return
	}
	post, found := bc.service.UpdatePost(chi.URLParam(r, "id"), payload.Title, payload.Content)
	if !found {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (bc *BoardController) DeletePost(w http.ResponseWriter, r *http.Request) {
	if !bc.service.DeletePost(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
