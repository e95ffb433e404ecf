package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/noctiluca/thermia/internal/db"
	"github.com/noctiluca/thermia/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	from, err := handler.parseOptionalDayQuery(c, "from")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	to, err := handler.parseOptionalDayQuery(c, "to")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := handler.exportService.BuildRows(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	summary := fiber.Map{"total_rows": len(rows), "has_data": len(rows) > 0}
	if len(rows) > 0 {
		summary["date_from"] = rows[0].Date
		summary["date_to"] = rows[len(rows)-1].Date
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	from, err := handler.parseOptionalDayQuery(c, "from")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	to, err := handler.parseOptionalDayQuery(c, "to")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := handler.exportService.BuildRows(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		if err := writer.Write(row.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	snapshot, err := handler.repositories.Snapshots.Load()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load data")
	}

	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(c, "application/json", buildExportFilename(now, "json"))
	return c.JSON(snapshot)
}

// ImportSnapshot restores a previously exported dataset, replacing every
// existing row.
func (handler *Handler) ImportSnapshot(c *fiber.Ctx) error {
	snapshot := db.Snapshot{}
	if err := c.BodyParser(&snapshot); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid snapshot body")
	}

	if err := handler.repositories.Snapshots.Replace(snapshot); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to import data")
	}
	return c.JSON(fiber.Map{
		"ok":           true,
		"temperatures": len(snapshot.Temperatures),
		"notes":        len(snapshot.Notes),
		"cycle_starts": len(snapshot.CycleStarts),
	})
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("thermia_export_%s.%s", now.Format("20060102_150405"), extension)
}
