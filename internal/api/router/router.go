package router

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neillbeauty/neill-beauty-api/internal/auth"
	"github.com/neillbeauty/neill-beauty-api/internal/contact"
	"github.com/neillbeauty/neill-beauty-api/internal/content"
	"github.com/neillbeauty/neill-beauty-api/internal/http/middleware"
	"github.com/neillbeauty/neill-beauty-api/internal/invoices"
	"github.com/neillbeauty/neill-beauty-api/internal/reservations"
	"github.com/neillbeauty/neill-beauty-api/internal/slots"
	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

// Deps carries everything the router needs.
type Deps struct {
	DB           *sql.DB
	Logger       *logging.Logger
	CORSOrigins  []string
	Verifier     middleware.TokenVerifier
	Auth         *auth.Handler
	Slots        *slots.Handler
	Reservations *reservations.Handler
	Contact      *contact.Handler
	Content      *content.Handler
	Invoices     *invoices.Handler
}

// New assembles the public and admin API routes.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(d.CORSOrigins))

	r.Get("/health", healthHandler(d.DB))
	r.Handle("/metrics", promhttp.Handler())

	// public site API
	r.Get("/available-slots", d.Slots.Available)
	r.Post("/reservations", d.Reservations.Create)
	r.Post("/contact", d.Contact.Create)
	r.Get("/services", d.Content.ListServices)
	r.Get("/formations", d.Content.ListFormations)
	r.Get("/team-members", d.Content.ListTeamMembers)
	r.Get("/testimonials", d.Content.ListTestimonials)
	r.Get("/faqs", d.Content.ListFAQs)
	r.Get("/gallery", d.Content.ListGalleryItems)

	r.Post("/admin/login", d.Auth.Login)
	r.Delete("/admin/login", d.Auth.Logout)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(d.Verifier, d.Logger))

		// status updates carry the id in the body, deletes in the query
		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", d.Reservations.List)
			r.Post("/", d.Reservations.AdminCreate)
			r.Get("/{id}", d.Reservations.Get)
			r.Put("/", d.Reservations.UpdateStatus)
			r.Delete("/", d.Reservations.Delete)
		})

		// slot updates carry the id in the body, deletes in the query
		r.Route("/time-slots", func(r chi.Router) {
			r.Get("/", d.Slots.List)
			r.Post("/", d.Slots.Create)
			r.Put("/", d.Slots.Update)
			r.Delete("/", d.Slots.Delete)
		})

		r.Route("/contact-messages", func(r chi.Router) {
			r.Get("/", d.Contact.List)
			r.Get("/{id}", d.Contact.Get)
			r.Patch("/{id}/status", d.Contact.UpdateStatus)
			r.Post("/{id}/reply", d.Contact.Reply)
			r.Delete("/{id}", d.Contact.Delete)
		})

		r.Route("/services", func(r chi.Router) {
			r.Post("/", d.Content.CreateService)
			r.Put("/{id}", d.Content.UpdateService)
			r.Delete("/{id}", d.Content.DeleteService)
		})
		r.Route("/formations", func(r chi.Router) {
			r.Post("/", d.Content.CreateFormation)
			r.Put("/{id}", d.Content.UpdateFormation)
			r.Delete("/{id}", d.Content.DeleteFormation)
		})
		r.Route("/team-members", func(r chi.Router) {
			r.Post("/", d.Content.CreateTeamMember)
			r.Put("/{id}", d.Content.UpdateTeamMember)
			r.Delete("/{id}", d.Content.DeleteTeamMember)
		})
		r.Route("/testimonials", func(r chi.Router) {
			r.Post("/", d.Content.CreateTestimonial)
			r.Put("/{id}", d.Content.UpdateTestimonial)
			r.Delete("/{id}", d.Content.DeleteTestimonial)
		})
		r.Route("/faqs", func(r chi.Router) {
			r.Post("/", d.Content.CreateFAQ)
			r.Put("/{id}", d.Content.UpdateFAQ)
			r.Delete("/{id}", d.Content.DeleteFAQ)
		})
		r.Route("/gallery", func(r chi.Router) {
			r.Post("/", d.Content.CreateGalleryItem)
			r.Put("/{id}", d.Content.UpdateGalleryItem)
			r.Delete("/{id}", d.Content.DeleteGalleryItem)
		})

		r.Route("/parameters", func(r chi.Router) {
			r.Get("/", d.Content.ListParameters)
			r.Put("/{key}", d.Content.SetParameter)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", d.Invoices.List)
			r.Post("/", d.Invoices.Create)
			r.Get("/{id}", d.Invoices.Get)
			r.Post("/{id}/payments", d.Invoices.RecordPayment)
			r.Post("/{id}/cancel", d.Invoices.Cancel)
			r.Delete("/{id}", d.Invoices.Delete)
		})
	})

	return r
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
	}
}
