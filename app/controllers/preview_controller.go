package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
	"github.com/vistorialabs/laudoforge/internal/pkg/renderer"
)

// HandlePreviewDocument returns the full screen document as JSON. The
// response carries every page so a client can paginate without another
// round trip.
func HandlePreviewDocument(c *fiber.Ctx) error {
	report, err := findReport(c)
	if report == nil {
		return err
	}

	doc := renderer.BuildDocument(report.ToRecord())
	return c.JSON(doc)
}

// HandlePreviewPage renders one preview page as HTML. Out-of-range page
// numbers are clamped into the document, never an error.
func HandlePreviewPage(c *fiber.Ctx) error {
	report, err := findReport(c)
	if report == nil {
		return err
	}

	doc := renderer.BuildDocument(report.ToRecord())
	page := laudo.ClampPage(c.QueryInt("page", 1), doc.TotalPages)

	return c.Render("preview", fiber.Map{
		"Report":     report,
		"Page":       doc.Pages[page-1],
		"PageNumber": page,
		"TotalPages": doc.TotalPages,
		"HasPrev":    page > 1,
		"HasNext":    page < doc.TotalPages,
		"PrevPage":   page - 1,
		"NextPage":   page + 1,
	})
}
