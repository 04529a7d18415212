package handlers

import (
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Get("/health", h.HealthHandler)

	r.Get("/games", h.handle(h.ListGames))
	r.Post("/games/{id}/ads", h.handle(h.CreateAd))
	r.Get("/games/{id}/ads", h.handle(h.ListAds))
	r.Get("/ads/{id}/discord", h.handle(h.GetAdContact))
}
