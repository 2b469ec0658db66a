// Package server provides the HTTP server implementation for the catalog API.
// It handles routing, middleware configuration, and server lifecycle
// management.
//
// The entire HTTP surface is declared as an explicit route table built once
// at startup: every route names its parameters, their sources, and their
// constraints, and the dispatch layer enforces them before any handler runs.
package server

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sandgrav/catalog-api/internal/constants"
	"github.com/sandgrav/catalog-api/internal/dispatch"
	"github.com/sandgrav/catalog-api/internal/middleware"
	"github.com/sandgrav/catalog-api/internal/models"
	"github.com/sandgrav/catalog-api/internal/utils"
)

// fixedQueryPattern constrains the item search query parameter.
var fixedQueryPattern = regexp.MustCompile(`^fixedquery$`)

// SetupRoutes configures the router: the middleware chain, the fallback
// handlers for unmatched routes and methods, the operational endpoints, and
// the dispatched route table.
func (s *Server) SetupRoutes() error {
	// Create router
	r := chi.NewRouter()

	// Base middleware
	r.Use(middleware.CORS(s.Config.CORS.AllowedOrigins, s.Config.CORS.AllowCredentials))
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	if s.Config.Logging.RequestLog {
		r.Use(middleware.RequestLogger())
	}

	// Routing failures are part of the wire contract: an unmatched path is a
	// 404 and a matched path with the wrong method is a 405, both with a
	// detail body. Handlers are never invoked in either case.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.NotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.MethodNotAllowed(w)
	})

	// Health check and version routes
	r.Get(constants.HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		utils.JSON(w, constants.StatusOK, map[string]string{
			"status":  "healthy",
			"version": s.Config.App.Version,
		})
	})
	r.Get(constants.VersionPath, func(w http.ResponseWriter, _ *http.Request) {
		utils.JSON(w, constants.StatusOK, map[string]string{
			"version":     s.Config.App.Version,
			"environment": s.Config.App.Environment,
		})
	})

	// Mount the dispatched route table
	if err := dispatch.Mount(r, s.routeTable()); err != nil {
		return err
	}

	s.router = r
	return nil
}

// routeTable declares every dispatched endpoint. The table is the single
// source of truth for parameter sources, types, defaults, and constraints;
// it is immutable once mounted.
func (s *Server) routeTable() []dispatch.Route {
	h := s.Handlers

	return []dispatch.Route{
		{
			Method:  http.MethodGet,
			Path:    constants.RootPath,
			Handler: h.Core.Root,
		},
		{
			Method: http.MethodGet,
			Path:   constants.ItemDetailPath,
			Params: []dispatch.ParameterSpec{
				{Name: "item_id", Source: dispatch.SourcePath, Kind: dispatch.KindInt},
			},
			Handler: h.Item.Read,
		},
		{
			Method:  http.MethodGet,
			Path:    constants.UserMePath,
			Handler: h.User.ReadMe,
		},
		{
			Method: http.MethodGet,
			Path:   constants.UserDetailPath,
			Params: []dispatch.ParameterSpec{
				{Name: "user_id", Source: dispatch.SourcePath, Kind: dispatch.KindString},
			},
			Handler: h.User.Read,
		},
		{
			Method: http.MethodGet,
			Path:   constants.ModelDetailPath,
			Params: []dispatch.ParameterSpec{
				{Name: "model_name", Source: dispatch.SourcePath, Kind: dispatch.KindEnum, Enum: models.ModelNames()},
			},
			Handler: h.Model.Read,
		},
		{
			Method: http.MethodGet,
			Path:   constants.FileDetailPath,
			Params: []dispatch.ParameterSpec{
				{Name: "file_path", Source: dispatch.SourcePath, Kind: dispatch.KindString, Wildcard: true},
			},
			Handler: h.File.Read,
		},
		{
			Method: http.MethodGet,
			Path:   constants.ItemListPath,
			Params: []dispatch.ParameterSpec{
				{Name: "skip", Source: dispatch.SourceQuery, Kind: dispatch.KindInt, Default: constants.DefaultSkip},
				{Name: "limit", Source: dispatch.SourceQuery, Kind: dispatch.KindInt, Default: constants.DefaultLimit},
			},
			Handler: h.Item.List,
		},
		{
			Method: http.MethodGet,
			Path:   constants.ItemSummaryPath,
			Params: []dispatch.ParameterSpec{
				{Name: "item_id", Source: dispatch.SourcePath, Kind: dispatch.KindString},
				{Name: "q", Source: dispatch.SourceQuery, Kind: dispatch.KindString},
				{Name: "short", Source: dispatch.SourceQuery, Kind: dispatch.KindBool, Default: false},
			},
			Handler: h.Item.Summarize,
		},
		{
			Method: http.MethodGet,
			Path:   constants.ItemSearchPath,
			Params: []dispatch.ParameterSpec{
				{
					Name:      "q",
					Source:    dispatch.SourceQuery,
					Kind:      dispatch.KindString,
					MinLength: dispatch.Int(3),
					MaxLength: dispatch.Int(50),
					Pattern:   fixedQueryPattern,
				},
			},
			Handler: h.Item.Search,
		},
		{
			Method: http.MethodGet,
			Path:   constants.ItemAliasPath,
			Params: []dispatch.ParameterSpec{
				{Name: "q", Alias: "item-query", Source: dispatch.SourceQuery, Kind: dispatch.KindString},
			},
			Handler: h.Item.SearchAlias,
		},
		{
			Method: http.MethodGet,
			Path:   constants.ItemMultiQueryPath,
			Params: []dispatch.ParameterSpec{
				{Name: "q", Source: dispatch.SourceQuery, Kind: dispatch.KindStringList},
			},
			Handler: h.Item.MultiQuery,
		},
		{
			Method: http.MethodGet,
			Path:   constants.ItemBoundedPath,
			Params: []dispatch.ParameterSpec{
				{
					Name:   "item_id",
					Source: dispatch.SourcePath,
					Kind:   dispatch.KindInt,
					Ge:     dispatch.Float(0),
					Le:     dispatch.Float(1000),
				},
				{
					Name:     "size",
					Source:   dispatch.SourceQuery,
					Kind:     dispatch.KindFloat,
					Required: true,
					Gt:       dispatch.Float(0),
					Lt:       dispatch.Float(10),
				},
			},
			Handler: h.Item.ReadBounded,
		},
		{
			Method: http.MethodPost,
			Path:   constants.ItemCreatePath,
			Params: []dispatch.ParameterSpec{
				{
					Name:     "item",
					Source:   dispatch.SourceBody,
					Kind:     dispatch.KindModel,
					Required: true,
					New:      func() any { return &models.Item{} },
				},
			},
			Handler: h.Item.Create,
		},
		{
			Method: http.MethodPost,
			Path:   constants.ItemDetailedPath,
			Params: []dispatch.ParameterSpec{
				{
					Name:     "item",
					Source:   dispatch.SourceBody,
					Kind:     dispatch.KindModel,
					Required: true,
					// The tag set defaults to empty so an omitted field
					// echoes as [] rather than null.
					New: func() any { return &models.DetailedItem{Tags: []string{}} },
				},
			},
			Handler: h.Item.CreateDetailed,
		},
		{
			Method: http.MethodPut,
			Path:   constants.ItemReplacePath,
			Params: []dispatch.ParameterSpec{
				{Name: "item_id", Source: dispatch.SourcePath, Kind: dispatch.KindInt},
				{
					Name:     "item",
					Source:   dispatch.SourceBody,
					Kind:     dispatch.KindModel,
					Required: true,
					Embed:    true,
					New:      func() any { return &models.Item{} },
				},
			},
			Handler: h.Item.Replace,
		},
		{
			Method: http.MethodPost,
			Path:   constants.OfferCreatePath,
			Params: []dispatch.ParameterSpec{
				{
					Name:     "offer",
					Source:   dispatch.SourceBody,
					Kind:     dispatch.KindModel,
					Required: true,
					New:      func() any { return &models.Offer{} },
				},
			},
			Handler: h.Offer.Create,
		},
		{
			Method: http.MethodPost,
			Path:   constants.ImageMultiplePath,
			Params: []dispatch.ParameterSpec{
				{
					Name:     "images",
					Source:   dispatch.SourceBody,
					Kind:     dispatch.KindModel,
					Required: true,
					New:      func() any { return &[]models.Image{} },
				},
			},
			Handler: h.Offer.CreateImages,
		},
		{
			Method: http.MethodPost,
			Path:   constants.IndexWeightsPath,
			Params: []dispatch.ParameterSpec{
				{Name: "weights", Source: dispatch.SourceBody, Kind: dispatch.KindWeights, Required: true},
			},
			Handler: h.Offer.CreateIndexWeights,
		},
		{
			Method: http.MethodGet,
			Path:   constants.ItemCookiePath,
			Params: []dispatch.ParameterSpec{
				{Name: "ads_id", Source: dispatch.SourceCookie, Kind: dispatch.KindString},
			},
			Handler: h.Item.ReadAds,
		},
	}
}
