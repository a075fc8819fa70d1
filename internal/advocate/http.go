// Copyright (c) 2026 Advora. All rights reserved.

package advocate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fk-solace/advora/internal/platform/apperr"
	"github.com/fk-solace/advora/internal/platform/constants"
	requestutil "github.com/fk-solace/advora/internal/platform/request"
	"github.com/fk-solace/advora/internal/platform/respond"
	"github.com/fk-solace/advora/pkg/listparams"
	"github.com/fk-solace/advora/pkg/pagination"
	"github.com/fk-solace/advora/pkg/slice"
)

// Handler exposes the advocate directory over HTTP.
type Handler struct {
	service *Service
	policy  listparams.Policy
	strict  bool
}

// NewHandler constructs the HTTP handler. With strict enabled, query
// parameters that would otherwise be silently coerced produce a 400 instead.
func NewHandler(service *Service, strict bool) *Handler {
	return &Handler{
		service: service,
		policy:  listparams.DefaultPolicy,
		strict:  strict,
	}
}

// RegisterRoutes mounts the advocate endpoints on the router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAdvocates)
	router.Get("/{id}", handler.getAdvocate)
	router.Post("/", handler.createAdvocate)
}

// listAdvocates is the collection endpoint: parse → filter → sort → window,
// then attach Link and ETag headers alongside the list envelope.
func (handler *Handler) listAdvocates(writer http.ResponseWriter, request *http.Request) {
	query, issues := listparams.Parse(request.URL.Query(), QuerySchema, handler.policy)

	if handler.strict && len(issues) > 0 {
		details := slice.Map(issues, func(issue listparams.Issue) apperr.FieldError {
			return apperr.FieldError{Field: issue.Param, Message: issue.Reason}
		})
		respond.Error(writer, request, apperr.ValidationError("Invalid query parameters", details...))
		return
	}

	advocates, meta, err := handler.service.List(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pageRequest := pagination.Request{
		Number:      query.Page.Number,
		Size:        query.Page.Size,
		Cursor:      query.Page.Cursor,
		CursorField: query.Page.CursorField,
	}
	if link := pagination.LinkHeader(request.URL, meta, pageRequest); link != "" {
		writer.Header().Set(constants.HeaderLink, link)
	}
	writer.Header().Set(constants.HeaderETag, pagination.WeakETag(
		meta.TotalCount,
		query.Page.Number,
		query.Page.Size,
		query.Sort.Field,
		string(query.Sort.Dir),
	))

	respond.List(writer, advocates, meta)
}

// getAdvocate returns one advocate by id.
func (handler *Handler) getAdvocate(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	a, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, a)
}

// createAdvocate registers a new advocate with location and specialties.
func (handler *Handler) createAdvocate(writer http.ResponseWriter, request *http.Request) {
	var input Advocate
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

// Seed populates the sample dataset. Mounted separately by the server so it
// can be restricted to development deployments.
func (handler *Handler) Seed(writer http.ResponseWriter, request *http.Request) {
	count, err := handler.service.Seed(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]int{"seeded": count})
}
