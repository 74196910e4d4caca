package router

import (
	_ "encore/docs" // registers the swagger spec served under /swagger
	"encore/internal/handlers/auth"
	"encore/internal/handlers/booking"
	"encore/internal/handlers/email"
	"encore/internal/handlers/health"
	"encore/internal/handlers/message"
	"encore/internal/handlers/pages"
	"encore/internal/handlers/show"
	"encore/internal/handlers/user"
	"encore/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Booking booking.Handler
	Show    show.Handler
	Message message.Handler
	Email   email.Handler
	Pages   pages.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	authRole       middleware.AuthRole
}

// SetupRoutes mounts the site at the root, the REST API under /v1 and the
// integration endpoints under /api. Both API trees share the auth chain.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.DomainHandlers.Pages.Router(router, r.app.Throttle())

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.app.RateLimit(), r.authRole.APIKey, r.authRole.Auth, r.authRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup, r.app.Throttle())
		r.DomainHandlers.Show.Router(routerGroup)
		r.DomainHandlers.Message.Router(routerGroup, r.app.Throttle())
	})

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.app.RateLimit(), r.authRole.APIKey, r.authRole.Auth, r.authRole.RBAC)

		r.DomainHandlers.Email.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		authRole:       authRole,
	}
}
