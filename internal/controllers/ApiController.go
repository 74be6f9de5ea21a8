package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"dashd/internal/models"
	"dashd/internal/providers"
	"dashd/internal/services"
	"dashd/internal/store"
)

// ApiController serves the statistics read surface. Responses are JSON;
// failures carry an "error" key.
type ApiController struct {
	logger  providers.Logger
	service services.StatisticServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.StatisticServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	gson, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// params validates the {type}/{date} pair shared by the statistics
// routes.
func (ac *ApiController) params(w http.ResponseWriter, r *http.Request) (models.StatType, models.DateKey, bool) {
	typ, err := models.ParseStatType(chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	date, err := models.ParseDateKey(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	return typ, date, true
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "statistics not found")
			return
		}
		ac.logger.Errorf(providers.TypeGet, "Store read failed: %s", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetDocument(w http.ResponseWriter, r *http.Request) {
	typ, date, ok := ac.params(w, r)
	if !ok {
		return
	}
	ac.serveFromCacheOrCompute(w, "doc:"+string(typ)+":"+string(date), func() (any, error) {
		return ac.service.GetDocument(r.Context(), typ, date)
	})
}

func (ac *ApiController) GetLatest(w http.ResponseWriter, r *http.Request) {
	typ, date, ok := ac.params(w, r)
	if !ok {
		return
	}
	ac.serveFromCacheOrCompute(w, "latest:"+string(typ)+":"+string(date), func() (any, error) {
		return ac.service.GetLatestSnapshot(r.Context(), typ, date)
	})
}

func (ac *ApiController) GetTypes(w http.ResponseWriter, _ *http.Request) {
	ac.serveFromCacheOrCompute(w, "types", func() (any, error) {
		return ac.service.Types(), nil
	})
}
