// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package home

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/showcase/internal/platform/request"
	"github.com/taibuivan/showcase/internal/platform/respond"
)

// Handler implements the HTTP layer of the homepage.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the homepage endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getHome)
	router.Get("/skills/{name}", handler.getRelated)

	return router
}

/*
GET /api/v1/home.

Response:
  - 200: View
  - 503: CONTENT_UNAVAILABLE
*/
func (handler *Handler) getHome(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.View(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

/*
GET /api/v1/home/skills/{name}.

Description: Lists the projects mapped to one skill, as shown when a skill
pill is hovered, focused or activated.

Response:
  - 200: Related
  - 404: NOT_FOUND (no skill with that name)
*/
func (handler *Handler) getRelated(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	related, err := handler.service.Related(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, related)
}
