package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/vistorialabs/laudoforge/internal/pkg/exporter"
)

// HandleExportReport renders a stored report into a downloadable document.
// The :format parameter selects the target, "pdf" or "docx".
func HandleExportReport(c *fiber.Ctx) error {
	report, err := findReport(c)
	if report == nil {
		return err
	}

	var target exporter.Target
	switch c.Params("format") {
	case "pdf":
		target = exporter.TargetPDF
	case "docx", "word":
		target = exporter.TargetWord
	default:
		return jsonError(c, fiber.StatusBadRequest, "invalid_format", "Supported export formats: pdf, docx")
	}

	result, err := exporter.Export(report.ToRecord(), target)
	if err != nil {
		if errors.Is(err, exporter.ErrExportContainer) {
			log.Error("[ExportController] export failed: ", err)
			return jsonError(c, fiber.StatusInternalServerError, "export_failed", "Failed to build export document")
		}
		log.Error("[ExportController] unexpected export error: ", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Export failed")
	}

	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.Filename))
	return c.Send(result.Data)
}
