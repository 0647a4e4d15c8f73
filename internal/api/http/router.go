package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repair-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/repair-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Users     *handlers.UsersHandler
	Orders    *handlers.OrdersHandler
	Dashboard *handlers.DashboardHandler
	Gate      *auth.GateMiddleware
}

// RegisterRoutes wires HTTP routes. Every view sits behind the auth gate;
// only the health probes are open.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	dashboard := app.Group("/dashboard", cfg.Gate.Handle)
	dashboard.Get("/summary", cfg.Dashboard.Summary)
	dashboard.Get("/users", cfg.Users.ListUsers)
	dashboard.Get("/users/:id", cfg.Users.GetUser)

	orders := app.Group("/orders", cfg.Gate.Handle)
	orders.Get("/", cfg.Orders.ListOrders)
	orders.Get("/:id", cfg.Orders.GetOrder)
	orders.Post("/:id/status", cfg.Orders.UpdateStatus)
}
