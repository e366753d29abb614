package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/vistorialabs/laudoforge/app/controllers"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")

	reports := v1.Group("/reports")
	reports.Post("/", controllers.HandleCreateReport)
	reports.Get("/", controllers.HandleListReports)
	reports.Get("/:uuid", controllers.HandleGetReport)
	reports.Put("/:uuid", controllers.HandleUpdateReport)
	reports.Delete("/:uuid", controllers.HandleDeleteReport)
	reports.Get("/:uuid/preview", controllers.HandlePreviewDocument)
	reports.Get("/:uuid/export/:format", controllers.HandleExportReport)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
