// Copyright (c) 2026 YaMDB. All rights reserved.

package title

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yamdb/yamdb/internal/platform/middleware"
	requestutil "github.com/yamdb/yamdb/internal/platform/request"
	"github.com/yamdb/yamdb/internal/platform/respond"
	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/pkg/convert"
	"github.com/yamdb/yamdb/pkg/pagination"
	"github.com/yamdb/yamdb/pkg/query"
)

// Handler implements the title HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with title routes.
//
// # Endpoints
//   - GET    /     : List titles with filters (public).
//   - GET    /{id} : Fetch a title (public).
//   - POST   /     : Create title (admin).
//   - PATCH  /{id} : Update title (admin).
//   - DELETE /{id} : Delete title (admin).
//
// Nested review routes are mounted by the server composition root, not here.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Post("/", handler.create)
		r.Patch("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Genres      []string `json:"genre"`
}

type updateRequest struct {
	Name        *string   `json:"name"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genres      *[]string `json:"genre"`
}

// # Handlers

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	queryValues := request.URL.Query()

	// genre accepts a comma-separated slug list (?genre=drama,sci-fi).
	filter := Filter{
		CategorySlug: queryValues.Get("category"),
		GenreSlugs:   query.StringSlice(queryValues.Get("genre")),
		Name:         queryValues.Get("name"),
		Year:         convert.ToIntD(queryValues.Get("year"), 0),
	}

	titles, total, err := handler.service.List(request.Context(), params, filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, titles, pagination.NewMeta(params, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "id", "Title")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	title, err := handler.service.Get(request.Context(), titleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, title)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload createRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	title, err := handler.service.Create(request.Context(), CreateInput{
		Name:        payload.Name,
		Year:        payload.Year,
		Description: payload.Description,
		Category:    payload.Category,
		Genres:      payload.Genres,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, title)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "id", "Title")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload updateRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	title, err := handler.service.Update(request.Context(), titleID, UpdateInput{
		Name:        payload.Name,
		Year:        payload.Year,
		Description: payload.Description,
		Category:    payload.Category,
		Genres:      payload.Genres,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, title)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "id", "Title")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), titleID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
