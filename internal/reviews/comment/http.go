// Copyright (c) 2026 YaMDB. All rights reserved.

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yamdb/yamdb/internal/platform/middleware"
	requestutil "github.com/yamdb/yamdb/internal/platform/request"
	"github.com/yamdb/yamdb/internal/platform/respond"
	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/internal/reviews/review"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// Handler implements the comment HTTP endpoints.
//
// The router is mounted at /titles/{titleID}/reviews/{reviewID}/comments.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with comment routes.
//
// # Endpoints
//   - GET    /     : List a review's comments (public).
//   - GET    /{id} : Fetch a comment (public).
//   - POST   /     : Publish a comment (authenticated).
//   - PATCH  /{id} : Edit a comment (author or moderator).
//   - DELETE /{id} : Delete a comment (author or moderator).
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
	Text string `json:"text"`
}

type updateRequest struct {
	Text *string `json:"text"`
}

// chain extracts the nested title and review IDs from the URL.
func chain(request *http.Request) (titleID, reviewID int64, err error) {
	titleID, err = requestutil.IntParam(request, "titleID", "Title")
	if err != nil {
		return 0, 0, err
	}
	reviewID, err = requestutil.IntParam(request, "reviewID", "Review")
	if err != nil {
		return 0, 0, err
	}
	return titleID, reviewID, nil
}

func actorFrom(request *http.Request) (review.Actor, error) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		return review.Actor{}, err
	}
	return review.Actor{UserID: claims.UserID, Role: sec.UserRole(claims.Role)}, nil
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, err := chain(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	comments, total, err := handler.service.List(request.Context(), titleID, reviewID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, comments, pagination.NewMeta(params, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, err := chain(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	commentID, err := requestutil.IntParam(request, "id", "Comment")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.Get(request.Context(), titleID, reviewID, commentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, err := chain(request)
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

	comment, err := handler.service.Create(request.Context(), titleID, reviewID, actor, payload.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, err := chain(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	commentID, err := requestutil.IntParam(request, "id", "Comment")
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

	comment, err := handler.service.Update(request.Context(), titleID, reviewID, commentID, actor, payload.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	titleID, reviewID, err := chain(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	commentID, err := requestutil.IntParam(request, "id", "Comment")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	actor, err := actorFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), titleID, reviewID, commentID, actor); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
