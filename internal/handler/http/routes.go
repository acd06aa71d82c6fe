// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// URL parameter names.
const (
	paramCampaignID = "campaignID"
	paramUserID     = "userID"
	paramMethodID   = "methodID"
	paramHelpID     = "helpID"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// service endpoints
	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}

	// routes without authorization
	router.Post("/signup", h.signUp)
	router.Post("/signin", h.signIn)

	router.Route("/users/me", func(r chi.Router) {
		r.Use(h.auth)
		r.Put("/password", h.changePassword)
		r.Delete("/", h.deleteAccount)
	})

	router.Route("/campaigns", func(r chi.Router) {
		r.Get("/", h.listCampaigns)
		r.Get("/u/{"+paramUserID+"}", h.listUserCampaigns)

		r.Route("/help/methods", func(r chi.Router) {
			r.Get("/", h.listHelpMethods)
			r.Get("/{"+paramMethodID+"}", h.getHelpMethod)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createHelpMethod)
				r.Put("/", h.updateHelpMethod)
				r.Put("/{"+paramMethodID+"}", h.updateHelpMethod)
				r.Delete("/", h.deleteHelpMethod)
				r.Delete("/{"+paramMethodID+"}", h.deleteHelpMethod)
			})
		})

		r.Get("/{"+paramCampaignID+"}", h.getCampaign)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createCampaign)
			r.Put("/{"+paramCampaignID+"}", h.updateCampaign)
			r.Delete("/{"+paramCampaignID+"}", h.deleteCampaign)

			r.Get("/{"+paramCampaignID+"}/help", h.listHelpDone)
			r.Post("/{"+paramCampaignID+"}/help", h.createHelpDone)
			r.Get("/{"+paramCampaignID+"}/help/{"+paramHelpID+"}", h.getHelpDone)
			r.Delete("/{"+paramCampaignID+"}/help/{"+paramHelpID+"}", h.deleteHelpDone)
		})
	})

	return router
}
