// Copyright (c) 2026 YaMDB. All rights reserved.

package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yamdb/yamdb/internal/platform/middleware"
	requestutil "github.com/yamdb/yamdb/internal/platform/request"
	"github.com/yamdb/yamdb/internal/platform/respond"
	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// Handler implements the genre HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with genre routes.
//
// # Endpoints
//   - GET    /       : List genres (public).
//   - POST   /       : Create genre (admin).
//   - DELETE /{slug} : Delete genre (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Post("/", handler.create)
		r.Delete("/{slug}", handler.delete)
	})

	return router
}

type createRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	search := request.URL.Query().Get("search")

	genres, total, err := handler.service.List(request.Context(), params, search)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, genres, pagination.NewMeta(params, total))
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload createRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, err := handler.service.Create(request.Context(), CreateInput{
		Name: payload.Name,
		Slug: payload.Slug,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, genre)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	genreSlug := requestutil.Param(request, "slug")

	if err := handler.service.Delete(request.Context(), genreSlug); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
