package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/recuperatax/audit/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Post("/audits", h.CreateAudit)

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.Payments)
			r.Get("/{id}", h.Payment)

			r.Group(func(r chi.Router) {
				r.Use(mw.APIKeyAuth)
				r.Post("/", h.CreatePayment)
				r.Patch("/{id}/status", h.UpdatePaymentStatus)
				r.Delete("/{id}", h.DeletePayment)
			})
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", h.Suppliers)
			r.Get("/{id}", h.Supplier)

			r.Group(func(r chi.Router) {
				r.Use(mw.APIKeyAuth)
				r.Post("/resolve", h.ResolveSupplier)
				r.Put("/{id}", h.UpdateSupplier)
				r.Delete("/{id}", h.DeleteSupplier)
			})
		})

		r.Route("/rules", func(r chi.Router) {
			r.Get("/", h.Rules)
			r.Get("/{activity_code}", h.Rule)

			r.Group(func(r chi.Router) {
				r.Use(mw.APIKeyAuth)
				r.Post("/", h.CreateRule)
				r.Put("/{id}", h.UpdateRule)
				r.Delete("/{id}", h.DeleteRule)
			})
		})
	})

	return mux
}
