package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"farmacia/internal/service"
)

const healthTimeout = 2 * time.Second

// Pinger is the part of *sql.DB the health check needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Services groups the use cases exposed over HTTP.
// Exports may be nil, in which case the export route is not mounted.
type Services struct {
	Clientes       service.ClienteService
	Productos      service.ProductoService
	Laboratorios   service.LaboratorioService
	Presentaciones service.PresentacionService
	Exports        service.ExportService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db Pinger, svcs Services) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/index.html", fiber.StatusFound)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	RegisterResource(app, "/clientes", "cliente", svcs.Clientes)
	RegisterResource(app, "/productos", "producto", svcs.Productos)
	RegisterResource(app, "/laboratorios", "laboratorio", svcs.Laboratorios)
	RegisterResource(app, "/presentaciones", "presentacion", svcs.Presentaciones)

	if svcs.Exports != nil {
		app.Post("/exports/inventario", ExportInventory(svcs.Exports))
	}
}

// HealthCheck reports readiness: 200 when the database answers a ping, 503 otherwise.
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ExportInventory writes a product snapshot to object storage and answers 201
// with its key and a pre-signed download URL.
func ExportInventory(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.ExportInventory(c.UserContext())
		if err != nil {
			return writeServiceError(c, "export", err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
