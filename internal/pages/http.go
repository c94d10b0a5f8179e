// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pages

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/showcase/internal/catalog"
	"github.com/taibuivan/showcase/internal/platform/constants"
	requestutil "github.com/taibuivan/showcase/internal/platform/request"
	"github.com/taibuivan/showcase/internal/platform/respond"
	"github.com/taibuivan/showcase/internal/platform/validate"
	"github.com/taibuivan/showcase/pkg/pagination"
	"github.com/taibuivan/showcase/pkg/query"
	"github.com/taibuivan/showcase/pkg/slice"
)

// FacetsParam is the query parameter carrying applied facets.
const FacetsParam = "facets"

// # Handler Implementation

// Handler implements the HTTP layer of one index page.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the page's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCards)
	router.Get("/facets", handler.listFacets)
	router.Post("/intents", handler.applyIntent)

	return router
}

/*
GET /api/v1/{blog|projects}.

Description: Renders one page of cards for a selection given in the query
string. The selector is reported closed.

Request:
  - q: string (Free-text query, case-insensitive substring)
  - facets: []string (Applied facets, repeated or comma-separated)
  - page: int (1-based; clamped into range)

Response:
  - 200: catalog.View with pagination meta
  - 503: CONTENT_UNAVAILABLE
*/
func (handler *Handler) listCards(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	state := catalog.NewState()
	state.Query = values.Get("q")
	state.Applied = catalog.NewFacetSet(query.Values(values, FacetsParam)...)
	state.Page = pagination.FromQuery(values)

	if err := validateState(state); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.View(request.Context(), state)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, view, view.Meta)
}

/*
GET /api/v1/{blog|projects}/facets.

Response:
  - 200: []string (Facet vocabulary in display order)
*/
func (handler *Handler) listFacets(writer http.ResponseWriter, request *http.Request) {
	facets, err := handler.service.Facets(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, facets)
}

// intentRequest is the body of POST /intents.
type intentRequest struct {
	State  catalog.State  `json:"state"`
	Intent catalog.Intent `json:"intent"`
}

/*
POST /api/v1/{blog|projects}/intents.

Description: Advances client-held selection state by one intent and
returns the next state with its rendered view.

Request:
  - state: catalog.State (Omitted fields default to an empty selection)
  - intent: catalog.Intent

Response:
  - 200: Transition
  - 400: VALIDATION_ERROR
  - 503: CONTENT_UNAVAILABLE
*/
func (handler *Handler) applyIntent(writer http.ResponseWriter, request *http.Request) {
	input := intentRequest{State: catalog.NewState()}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateIntent(input.State, input.Intent); err != nil {
		respond.Error(writer, request, err)
		return
	}

	transition, err := handler.service.Apply(request.Context(), input.State, input.Intent)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, transition)
}

// # Validation

func validateState(state catalog.State) error {
	v := &validate.Validator{}
	v.MaxLen("state.query", state.Query, constants.MaxQueryLength)

	for _, set := range []catalog.FacetSet{state.Applied, state.Staged} {
		for label := range set {
			v.MaxLen("state.facets", label, constants.MaxFacetLength)
		}
	}
	return v.Err()
}

var intentNames = slice.Map(catalog.IntentTypes, func(t catalog.IntentType) string { return string(t) })

func validateIntent(state catalog.State, intent catalog.Intent) error {
	if err := validateState(state); err != nil {
		return err
	}

	v := &validate.Validator{}
	v.Required("intent.type", string(intent.Type)).
		OneOf("intent.type", string(intent.Type), intentNames...).
		MaxLen("intent.query", intent.Query, constants.MaxQueryLength).
		MaxLen("intent.facet", intent.Facet, constants.MaxFacetLength).
		Custom("intent.facet", intent.Type == catalog.IntentToggleFacet && intent.Facet == "", "Required for toggleFacet")

	return v.Err()
}
