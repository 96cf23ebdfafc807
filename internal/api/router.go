package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors, mw.Session)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Post("/register", h.Register)
		r.Get("/me", h.Me)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAuth)

			r.Get("/kitchen", h.KitchenQueue)
			r.Post("/kitchen/items/{id}/serve", h.ServeItem)
			r.Post("/kitchen/orders/{id}/serve", h.ServeOrder)

			r.Get("/server/tables", h.Tables)
			r.Post("/server/tables/{table}/select", h.SelectTable)

			r.Get("/order-view", h.OrderView)
			r.Post("/order-view/menu", h.GoToMenu)
			r.Post("/order-view/end", h.RequestEnd)

			r.Get("/menu", h.Menu)
			r.Post("/menu/cart", h.Cart)
			r.Post("/menu/order", h.SubmitOrder)

			r.Get("/receipt", h.Receipt)
			r.Get("/receipt/pdf", h.ReceiptPDF)
			r.Post("/receipt/close", h.CloseSession)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.RequireAdmin)

			r.Get("/menu", h.AdminMenu)
			r.Post("/menu", h.CreateMenuItem)
			r.Get("/menu/{id}", h.AdminMenuItem)
			r.Put("/menu/{id}/availability", h.ToggleAvailability)
			r.Put("/menu/{id}/{field}", h.UpdateMenuItem)

			r.Post("/staff", h.AddStaff)
			r.Get("/stats", h.Stats)
			r.Get("/sessions/{id}", h.SessionDetail)
			r.Get("/orders/{id}", h.OrderDetail)
		})
	})

	return mux
}
