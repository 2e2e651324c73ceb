// Package api wires the HTTP surface: router, middleware stack and server.
package api

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/folio/folio/config"
	_ "github.com/folio/folio/docs/swagger" // registers the API document
	"github.com/folio/folio/pkg/api/handlers"
	"github.com/folio/folio/pkg/api/middleware"
	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/logger"
)

// Handlers holds all HTTP handlers. Nil handlers leave their routes unregistered.
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Chat      *handlers.ChatHandler
	Content   *handlers.ContentHandler
	Messages  *handlers.MessageHandler
	Documents *handlers.DocumentHandler
	Events    *handlers.WebSocketHandler

	// Verifier guards the admin routes. Without it they are not registered.
	Verifier middleware.TokenVerifier

	// Metrics is the optional metrics recorder
	Metrics middleware.MetricsRecorder
}

// NewRouter creates a new chi router with middleware and routes.
func NewRouter(cfg *config.Config, log logger.Logger, h *Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.ClientIP(cfg.Server.TrustedProxyHeader))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Tracing(middleware.DefaultTracingOptions()))
	if h.Metrics != nil {
		r.Use(middleware.Metrics(h.Metrics))
	}
	r.Use(middleware.CORS(&cfg.Server.CORS))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotFound, response.ErrCodeNotFound, "Not found", requestID(r))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, response.ErrCodeMethodNotAllowed, "Method not allowed", requestID(r))
	})

	// The event feed is long-lived, so it stays outside the request timeout.
	if h.Events != nil && h.Verifier != nil {
		r.With(middleware.RequireAuth(h.Verifier, log)).Get("/ws/events", h.Events.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.Server.HTTP.RequestTimeout))
		RegisterRoutes(r, log, h)
	})

	if cfg.Server.SiteDir != "" {
		r.Handle("/site/*", http.StripPrefix("/site", newSiteHandler(os.DirFS(cfg.Server.SiteDir), log)))
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// RegisterRoutes registers the public and admin API routes.
func RegisterRoutes(r chi.Router, log logger.Logger, h *Handlers) {
	admin := func(r chi.Router) chi.Router {
		return r.With(middleware.RequireAuth(h.Verifier, log))
	}
	secured := h.Verifier != nil

	if h.Health != nil {
		r.Get("/", h.Health.Welcome)
		r.Get("/health", h.Health.Health)
		r.Get("/ready", h.Health.Ready)
		r.Get("/status", h.Health.Status)
	}

	if h.Auth != nil {
		r.Post("/login", h.Auth.Login)
	}

	r.Route("/api", func(r chi.Router) {
		if h.Chat != nil {
			r.Route("/chatbot", func(r chi.Router) {
				r.Post("/message", h.Chat.SendMessage)
				r.Delete("/clear/{conversationID}", h.Chat.ClearConversation)
				r.Get("/cache/stats", h.Chat.CacheStats)
			})
		}

		if c := h.Content; c != nil {
			r.Route("/hero", func(r chi.Router) {
				r.Get("/", c.ListHeroes)
				r.Get("/{id}", c.GetHero)
				if secured {
					admin(r).Post("/", c.CreateHero)
					admin(r).Put("/{id}", c.UpdateHero)
					admin(r).Delete("/{id}", c.DeleteHero)
				}
			})
			r.Route("/about", func(r chi.Router) {
				r.Get("/", c.ListAbout)
				r.Get("/{id}", c.GetAbout)
				if secured {
					admin(r).Post("/", c.CreateAbout)
					admin(r).Put("/{id}", c.UpdateAbout)
					admin(r).Delete("/{id}", c.DeleteAbout)
				}
			})
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", c.ListProjects)
				r.Get("/manage", c.ListProjects)
				r.Get("/{id}", c.GetProject)
				if secured {
					admin(r).Post("/", c.CreateProject)
					admin(r).Put("/{id}", c.UpdateProject)
					admin(r).Delete("/{id}", c.DeleteProject)
				}
			})
			r.Route("/skills", func(r chi.Router) {
				r.Get("/", c.ListSkills)
				r.Get("/{id}", c.GetSkill)
				if secured {
					admin(r).Post("/", c.CreateSkill)
					admin(r).Put("/{id}", c.UpdateSkill)
					admin(r).Delete("/{id}", c.DeleteSkill)
				}
			})
		}

		if m := h.Messages; m != nil {
			r.Route("/messages", func(r chi.Router) {
				r.Post("/", m.Create)
				if secured {
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAuth(h.Verifier, log))
						r.Get("/", m.List)
						r.Post("/reply", m.Reply)
						r.Get("/{id}", m.Get)
						r.Put("/{id}", m.Update)
						r.Delete("/{id}", m.Delete)
					})
				}
			})
		}

		if d := h.Documents; d != nil {
			r.Route("/resume", func(r chi.Router) {
				r.Get("/current", d.Current)
				r.Get("/download/{type}", d.Download)
				if secured {
					admin(r).Post("/upload", d.Upload)
					admin(r).Delete("/delete/{type}", d.Delete)
				}
			})
		}
	})
}

func requestID(r *http.Request) string {
	if id := middleware.GetRequestID(r.Context()); id != "" {
		return id
	}
	return "unknown"
}
