// Copyright (c) 2026 YaMDB. All rights reserved.

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yamdb/yamdb/internal/platform/middleware"
	requestutil "github.com/yamdb/yamdb/internal/platform/request"
	"github.com/yamdb/yamdb/internal/platform/respond"
	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// Handler implements the review HTTP endpoints.
//
// The router is mounted at /titles/{titleID}/reviews, so every handler
// first extracts the parent title ID from the URL.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with review routes.
//
// # Endpoints
//   - GET    /     : List a title's reviews (public).
//   - GET    /{id} : Fetch a review (public).
//   - POST   /     : Publish a review (authenticated).
//   - PATCH  /{id} : Edit a review (author or moderator).
//   - DELETE /{id} : Delete a review (author or moderator).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.create)
		r.Patch("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

type writeRequest struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

type updateRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

// actorFrom builds the acting identity from the verified JWT claims.
func actorFrom(request *http.Request) (Actor, error) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		return Actor{}, err
	}
	return Actor{UserID: claims.UserID, Role: sec.UserRole(claims.Role)}, nil
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "titleID", "Title")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	reviews, total, err := handler.service.List(request.Context(), titleID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reviews, pagination.NewMeta(params, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "titleID", "Title")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	reviewID, err := requestutil.IntParam(request, "id", "Review")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.Get(request.Context(), titleID, reviewID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, review)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "titleID", "Title")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	actor, err := actorFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload writeRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.Create(request.Context(), titleID, actor, WriteInput{
		Text:  payload.Text,
		Score: payload.Score,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, review)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "titleID", "Title")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	reviewID, err := requestutil.IntParam(request, "id", "Review")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	actor, err := actorFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload updateRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.Update(request.Context(), titleID, reviewID, actor, UpdateInput{
		Text:  payload.Text,
		Score: payload.Score,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, review)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	titleID, err := requestutil.IntParam(request, "titleID", "Title")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	reviewID, err := requestutil.IntParam(request, "id", "Review")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	actor, err := actorFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), titleID, reviewID, actor); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
