package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository"
	"github.com/Matias-sh/mi-portafolio/database/repository/queries"
	"github.com/Matias-sh/mi-portafolio/handler/payload"
	"github.com/Matias-sh/mi-portafolio/pkg/cache"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
)

const (
	CategoriesCacheKey = "writeups:categories"
	TagsCacheKey       = "writeups:tags"
)

// ViewRecorder is notified after every counted detail view.
type ViewRecorder interface {
	ViewRecorded()
}

type WriteUpsHandler struct {
	WriteUps *repository.WriteUps
	Views    ViewRecorder
}

func NewWriteUpsHandler(writeups *repository.WriteUps, views ViewRecorder) WriteUpsHandler {
	return WriteUpsHandler{WriteUps: writeups, Views: views}
}

func (h WriteUpsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	query := r.URL.Query()

	filters := queries.WriteUpFilters{
		Category:   query.Get("category"),
		Platform:   query.Get("platform"),
		Difficulty: query.Get("difficulty"),
		Featured:   query.Get("featured"),
	}

	items, err := h.WriteUps.Published(filters)
	if err != nil {
		return endpoint.LogInternalError("could not fetch writeups", err)
	}

	respondCached(w, r, payload.GetWriteUpsResponse(items))

	return nil
}

// Show counts a view on every successful fetch, so the response is never
// cached.
func (h WriteUpsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	writeup, err := h.WriteUps.FindPublishedBy(r.PathValue("slug"))

	if errors.Is(err, database.ErrNotFound) {
		return endpoint.NotFound("WriteUp not found")
	}

	if err != nil {
		return endpoint.LogInternalError("could not fetch the writeup", err)
	}

	if err := h.WriteUps.IncrementViews(writeup); err != nil {
		return endpoint.LogInternalError("could not record the writeup view", err)
	}

	if h.Views != nil {
		h.Views.ViewRecorded()
	}

	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(payload.GetWriteUpDetailResponse(*writeup)); err != nil {
		slog.Error("failed to encode writeup response", "err", err)
	}

	return nil
}

type CategoriesHandler struct {
	Categories *repository.Categories
	Cache      cache.Store
	TTL        time.Duration
}

func NewCategoriesHandler(categories *repository.Categories, store cache.Store, ttl time.Duration) CategoriesHandler {
	return CategoriesHandler{Categories: categories, Cache: store, TTL: ttl}
}

func (h CategoriesHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	body, err := cache.Remember(r.Context(), h.Cache, CategoriesCacheKey, h.TTL, func() (string, error) {
		items, err := h.Categories.AllWithCounts()
		if err != nil {
			return "", err
		}

		return encode(payload.GetCategoriesResponse(items))
	})

	if err != nil {
		return endpoint.LogInternalError("could not fetch categories", err)
	}

	respondCached(w, r, json.RawMessage(body))

	return nil
}

type TagsHandler struct {
	Tags  *repository.Tags
	Cache cache.Store
	TTL   time.Duration
}

func NewTagsHandler(tags *repository.Tags, store cache.Store, ttl time.Duration) TagsHandler {
	return TagsHandler{Tags: tags, Cache: store, TTL: ttl}
}

func (h TagsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	body, err := cache.Remember(r.Context(), h.Cache, TagsCacheKey, h.TTL, func() (string, error) {
		items, err := h.Tags.AllWithCounts()
		if err != nil {
			return "", err
		}

		return encode(payload.GetTagsResponse(items))
	})

	if err != nil {
		return endpoint.LogInternalError("could not fetch tags", err)
	}

	respondCached(w, r, json.RawMessage(body))

	return nil
}

type ToolsHandler struct {
	Tools *repository.Tools
}

func NewToolsHandler(tools *repository.Tools) ToolsHandler {
	return ToolsHandler{Tools: tools}
}

func (h ToolsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	filters := queries.ToolFilters{Category: r.URL.Query().Get("category")}

	tools, err := h.Tools.All(filters)
	if err != nil {
		return endpoint.LogInternalError("could not fetch tools", err)
	}

	respondCached(w, r, payload.GetToolsResponse(tools))

	return nil
}

func encode(data any) (string, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
