package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository"
	"github.com/Matias-sh/mi-portafolio/database/repository/pagination"
	"github.com/Matias-sh/mi-portafolio/handler/paginate"
	"github.com/Matias-sh/mi-portafolio/pkg/cache"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

type ActionRequest struct {
	IDs []uint64 `json:"ids" validate:"required,min=1"`
}

type ActionResponse struct {
	Updated int64 `json:"updated"`
}

// Handler serves every resource in Schema through one set of endpoints.
type Handler struct {
	Resources *repository.Resources
	Validator *portal.Validator
	Cache     cache.Store
}

func NewHandler(resources *repository.Resources, validator *portal.Validator, store cache.Store) Handler {
	return Handler{Resources: resources, Validator: validator, Cache: store}
}

func (h Handler) Schema(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(Schema); err != nil {
		slog.Error("failed to encode admin schema", "err", err)
	}

	return nil
}

func (h Handler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	resource, apiErr := resolve(r)
	if apiErr != nil {
		return apiErr
	}

	query := r.URL.Query()
	filters, apiErr := parseFilters(resource, query)
	if apiErr != nil {
		return apiErr
	}

	params := repository.ListParams{
		Search:       query.Get("q"),
		SearchFields: resource.Search,
		Filters:      filters,
		Ordering:     resource.Ordering,
		Preloads:     resource.Preloads,
		Paginate:     paginate.MakeFrom(query),
	}

	dest := resource.NewList()

	total, err := h.Resources.List(resource.New(), dest, params)
	if err != nil {
		return endpoint.LogInternalError("could not list "+resource.Name, err)
	}

	items, err := rawItems(dest)
	if err != nil {
		return endpoint.LogInternalError("could not encode "+resource.Name, err)
	}

	params.Paginate.SetNumItems(total)
	page := pagination.MakePagination(items, params.Paginate)

	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(page); err != nil {
		slog.Error("failed to encode admin list", "resource", resource.Name, "err", err)
	}

	return nil
}

func (h Handler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	resource, apiErr := resolve(r)
	if apiErr != nil {
		return apiErr
	}

	model, apiErr := h.find(r, resource)
	if apiErr != nil {
		return apiErr
	}

	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(model); err != nil {
		slog.Error("failed to encode admin record", "resource", resource.Name, "err", err)
	}

	return nil
}

func (h Handler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	resource, apiErr := resolve(r)
	if apiErr != nil {
		return apiErr
	}

	body, err := endpoint.ParseRequestBody[map[string]json.RawMessage](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	model := resource.New()

	if apiErr := h.fill(resource, model, body, true); apiErr != nil {
		return apiErr
	}

	tags, hasTags, apiErr := h.tags(resource, body)
	if apiErr != nil {
		return apiErr
	}

	if err := h.Resources.Create(model); err != nil {
		return writeError(resource, err)
	}

	if hasTags {
		if err := h.Resources.ReplaceAssociation(model, "Tags", tags); err != nil {
			return writeError(resource, err)
		}
	}

	h.invalidate(r, resource)

	return h.respondWith(w, r, resource, model, http.StatusCreated)
}

// Update applies a partial update: only the editable keys present in the
// body change.
func (h Handler) Update(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	resource, apiErr := resolve(r)
	if apiErr != nil {
		return apiErr
	}

	model, apiErr := h.find(r, resource)
	if apiErr != nil {
		return apiErr
	}

	body, err := endpoint.ParseRequestBody[map[string]json.RawMessage](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if apiErr := h.fill(resource, model, body, false); apiErr != nil {
		return apiErr
	}

	tags, hasTags, apiErr := h.tags(resource, body)
	if apiErr != nil {
		return apiErr
	}

	if err := h.Resources.Update(model); err != nil {
		return writeError(resource, err)
	}

	if hasTags {
		if err := h.Resources.ReplaceAssociation(model, "Tags", tags); err != nil {
			return writeError(resource, err)
		}
	}

	h.invalidate(r, resource)

	return h.respondWith(w, r, resource, model, http.StatusOK)
}

func (h Handler) Destroy(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	resource, apiErr := resolve(r)
	if apiErr != nil {
		return apiErr
	}

	model, apiErr := h.find(r, resource)
	if apiErr != nil {
		return apiErr
	}

	if err := h.Resources.Delete(model); err != nil {
		return writeError(resource, err)
	}

	h.invalidate(r, resource)

	w.WriteHeader(http.StatusNoContent)

	return nil
}

func (h Handler) Action(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	resource, apiErr := resolve(r)
	if apiErr != nil {
		return apiErr
	}

	action, ok := resource.Action(r.PathValue("action"))
	if !ok {
		return endpoint.NotFound(fmt.Sprintf("Action %s not found for %s", r.PathValue("action"), resource.Name))
	}

	req, err := endpoint.ParseRequestBody[ActionRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if errs := h.Validator.Check(req); errs != nil {
		return endpoint.UnprocessableEntity("ids are required", errs)
	}

	updated, err := h.Resources.BulkUpdate(resource.New(), req.IDs, action.Column, action.Value)
	if err != nil {
		return endpoint.LogInternalError("could not run "+action.Name, err)
	}

	h.invalidate(r, resource)

	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(ActionResponse{Updated: updated}); err != nil {
		slog.Error("failed to encode action response", "err", err)
	}

	return nil
}

func resolve(r *http.Request) (Resource, *endpoint.ApiError) {
	name := r.PathValue("resource")

	resource, ok := Lookup(name)
	if !ok {
		return Resource{}, endpoint.NotFound(fmt.Sprintf("Resource %s not found", name))
	}

	return resource, nil
}

func (h Handler) find(r *http.Request, resource Resource) (any, *endpoint.ApiError) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		return nil, endpoint.NotFound(fmt.Sprintf("%s record not found", resource.Label))
	}

	return h.load(resource, id)
}

func (h Handler) load(resource Resource, id uint64) (any, *endpoint.ApiError) {
	model := resource.New()

	if err := h.Resources.Find(model, id, resource.Preloads); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, endpoint.NotFound(fmt.Sprintf("%s record not found", resource.Label))
		}

		return nil, endpoint.LogInternalError("could not load "+resource.Name, err)
	}

	return model, nil
}

// respondWith reloads the record so preloaded relations reflect the write.
func (h Handler) respondWith(w http.ResponseWriter, r *http.Request, resource Resource, model any, status int) *endpoint.ApiError {
	id, err := recordID(model)
	if err != nil {
		return endpoint.LogInternalError("could not read the record id", err)
	}

	fresh, apiErr := h.load(resource, id)
	if apiErr != nil {
		return apiErr
	}

	if err := endpoint.NewNoCacheResponse(w, r).Respond(status, fresh); err != nil {
		slog.Error("failed to encode admin record", "resource", resource.Name, "err", err)
	}

	return nil
}

func (h Handler) tags(resource Resource, body map[string]json.RawMessage) ([]database.Tag, bool, *endpoint.ApiError) {
	raw, ok := body[TagIDsField]
	if !resource.Tags || !ok {
		return nil, false, nil
	}

	var ids []uint64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false, endpoint.UnprocessableEntity("the record is invalid", map[string]any{
			TagIDsField: "Expected a list of tag ids.",
		})
	}

	tags, err := h.Resources.Tags(ids)
	if errors.Is(err, database.ErrInvalid) {
		return nil, false, endpoint.UnprocessableEntity("the record is invalid", map[string]any{
			TagIDsField: "Unknown tag ids.",
		})
	}

	if err != nil {
		return nil, false, endpoint.LogInternalError("could not load tags", err)
	}

	if tags == nil {
		tags = []database.Tag{}
	}

	return tags, true, nil
}

func (h Handler) invalidate(r *http.Request, resource Resource) {
	if h.Cache == nil {
		return
	}

	for _, key := range resource.Invalidates {
		if err := h.Cache.Delete(r.Context(), key); err != nil {
			slog.Warn("could not invalidate cache key", "key", key, "err", err)
		}
	}
}

func writeError(resource Resource, err error) *endpoint.ApiError {
	switch {
	case errors.Is(err, database.ErrConflict):
		return endpoint.Conflict(fmt.Sprintf("%s record already exists", resource.Label), err)
	case errors.Is(err, database.ErrInvalid):
		return endpoint.UnprocessableEntity(err.Error(), nil)
	case errors.Is(err, database.ErrNotFound):
		return endpoint.NotFound(fmt.Sprintf("%s record not found", resource.Label))
	}

	return endpoint.LogInternalError("could not write "+resource.Name, err)
}

func parseFilters(resource Resource, query map[string][]string) (map[string]any, *endpoint.ApiError) {
	filters := make(map[string]any)

	for name, values := range query {
		filter, ok := resource.Filter(name)
		if !ok || len(values) == 0 {
			continue
		}

		raw := strings.TrimSpace(values[0])
		if raw == "" {
			continue
		}

		switch filter.Kind {
		case KindBool:
			value, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, endpoint.BadRequestError(fmt.Sprintf("filter %s expects a boolean", name))
			}

			filters[name] = value
		case KindInt:
			value, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return nil, endpoint.BadRequestError(fmt.Sprintf("filter %s expects an id", name))
			}

			filters[name] = value
		default:
			filters[name] = raw
		}
	}

	return filters, nil
}

func rawItems(dest any) ([]json.RawMessage, error) {
	body, err := json.Marshal(dest)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func recordID(model any) (uint64, error) {
	values, err := toMap(model)
	if err != nil {
		return 0, err
	}

	id, ok := values["id"].(float64)
	if !ok || id <= 0 {
		return 0, errors.New("record has no id")
	}

	return uint64(id), nil
}

func toMap(model any) (map[string]any, error) {
	body, err := json.Marshal(model)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	if err := json.Unmarshal(body, &values); err != nil {
		return nil, err
	}

	return values, nil
}
