package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vistorialabs/laudoforge/app/models"
	"github.com/vistorialabs/laudoforge/app/repository"
	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
	"github.com/vistorialabs/laudoforge/internal/pkg/upload"
)

// ReportRequest is the JSON body for creating or updating a report
type ReportRequest struct {
	Kind   string            `json:"kind" validate:"required,oneof=precautionary accounting extrajudicial"`
	Status string            `json:"status" validate:"omitempty,oneof=draft completed"`
	Fields map[string]string `json:"fields"`
	Photos []laudo.Photo     `json:"photos"`
}

// HandleCreateReport creates a new report with the kind's default field set
func HandleCreateReport(c *fiber.Ctx) error {
	var req ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
	}
	if err := validate.Struct(req); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	if err := validateImageSources(req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_image", err.Error())
	}

	kind := laudo.ParseKind(req.Kind)

	// seed the kind's recognized fields, then lay the request on top
	fields := laudo.DefaultFields(kind)
	for key, value := range req.Fields {
		fields[key] = value
	}

	status := req.Status
	if status == "" {
		status = models.ReportStatusDraft
	}

	report := models.Report{
		UUID:        uuid.New().String(),
		Title:       fields[laudo.FieldTitle],
		Kind:        string(kind),
		Status:      status,
		CreatedDate: time.Now().Format("02/01/2006"),
	}
	if err := report.SetFieldMap(fields); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to encode report fields")
	}
	if err := report.SetPhotoList(req.Photos); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to encode report photos")
	}

	repo := repository.GetGlobalFactory().GetReportRepository()
	if err := repo.Create(&report); err != nil {
		log.Error("[ReportController] create failed: ", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save report")
	}

	log.Infof("[ReportController] created report %s (%s)", report.UUID, report.Kind)
	return c.Status(fiber.StatusCreated).JSON(report)
}

// HandleListReports returns reports with pagination, optionally by kind
func HandleListReports(c *fiber.Ctx) error {
	offset := queryInt(c, "offset", 0, 0)
	limit := queryInt(c, "limit", 20, 1)
	if limit > 100 {
		limit = 100
	}

	repo := repository.GetGlobalFactory().GetReportRepository()

	var (
		reports []models.Report
		total   int64
		err     error
	)
	if kind := c.Query("kind"); kind != "" {
		reports, err = repo.ListByKind(kind, offset, limit)
		if err == nil {
			total, err = repo.CountByKind(kind)
		}
	} else {
		reports, err = repo.List(offset, limit)
		if err == nil {
			total, err = repo.Count()
		}
	}
	if err != nil {
		log.Error("[ReportController] list failed: ", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load reports")
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"offset":  offset,
		"limit":   limit,
	})
}

// HandleGetReport returns a single report by UUID
func HandleGetReport(c *fiber.Ctx) error {
	report, err := findReport(c)
	if report == nil {
		return err
	}
	return c.JSON(report)
}

// HandleUpdateReport replaces the stored fields, photos and status of a
// report. Updates are wholesale; the last writer wins.
func HandleUpdateReport(c *fiber.Ctx) error {
	report, err := findReport(c)
	if report == nil {
		return err
	}

	var req ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
	}
	if err := validate.Struct(req); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	if err := validateImageSources(req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_image", err.Error())
	}

	report.Kind = string(laudo.ParseKind(req.Kind))
	if req.Status != "" {
		report.Status = req.Status
	}
	if err := report.SetFieldMap(req.Fields); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to encode report fields")
	}
	if err := report.SetPhotoList(req.Photos); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to encode report photos")
	}
	report.Title = req.Fields[laudo.FieldTitle]

	repo := repository.GetGlobalFactory().GetReportRepository()
	if err := repo.Update(report); err != nil {
		log.Error("[ReportController] update failed: ", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save report")
	}

	return c.JSON(report)
}

// HandleDeleteReport soft deletes a report by UUID
func HandleDeleteReport(c *fiber.Ctx) error {
	report, err := findReport(c)
	if report == nil {
		return err
	}

	repo := repository.GetGlobalFactory().GetReportRepository()
	if err := repo.Delete(report.ID); err != nil {
		log.Error("[ReportController] delete failed: ", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete report")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// findReport resolves the :uuid route parameter into a stored report. It
// writes the error response itself so handlers can return early.
func findReport(c *fiber.Ctx) (*models.Report, error) {
	id := c.Params("uuid")
	if id == "" {
		return nil, jsonError(c, fiber.StatusBadRequest, "invalid_request", "Missing report UUID")
	}

	repo := repository.GetGlobalFactory().GetReportRepository()
	report, err := repo.GetByUUID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "not_found", "Report not found")
		}
		log.Error("[ReportController] lookup failed: ", err)
		return nil, jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load report")
	}
	return report, nil
}

func validateImageSources(req ReportRequest) error {
	if err := upload.ValidateImageSource(req.Fields["locationImage"]); err != nil {
		return err
	}
	if err := upload.ValidateImageSource(req.Fields["logoImage"]); err != nil {
		return err
	}
	for _, photo := range req.Photos {
		if err := upload.ValidateImageSource(photo.Source); err != nil {
			return err
		}
	}
	return nil
}
