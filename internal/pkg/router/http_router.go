package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vistorialabs/laudoforge/app/controllers"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Server-rendered preview pages, one report page per request
	app.Get("/reports/:uuid/preview", controllers.HandlePreviewPage)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
