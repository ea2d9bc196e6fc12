package handlers

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/msumanth960/Votingapp/internal/services"
	"github.com/msumanth960/Votingapp/internal/utils"
)

func (h *Handler) ResultsDashboard(c *fiber.Ctx) error {
	overview, err := h.resultsSvc.Dashboard()
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, overview, "Dashboard retrieved successfully")
}

// VillageResults returns the tallies for one village. The election defaults
// to the ongoing one, then the most recent election with votes.
func (h *Handler) VillageResults(c *fiber.Ctx) error {
	results, err := h.resultsSvc.VillageResults(c.Params("id"), c.Query("election_id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.Success(c, results, "Results retrieved successfully")
}

// ExportVotesCSV streams a village's votes as a CSV attachment. Mobile
// numbers are masked in the export.
func (h *Handler) ExportVotesCSV(c *fiber.Ctx) error {
	rows, election, village, err := h.resultsSvc.ExportVotes(c.Params("id"), c.Query("election_id"))
	if err != nil {
		return h.respondError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(services.ExportHeader()); err != nil {
		logrus.Errorf("failed to write CSV header: %v", err)
		return utils.Error(c, "Failed to build export", fiber.StatusInternalServerError)
	}
	for _, row := range rows {
		if err := w.Write(row.Columns()); err != nil {
			logrus.Errorf("failed to write CSV row: %v", err)
			return utils.Error(c, "Failed to build export", fiber.StatusInternalServerError)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logrus.Errorf("failed to flush CSV: %v", err)
		return utils.Error(c, "Failed to build export", fiber.StatusInternalServerError)
	}

	filename := services.ExportFilename(village, election, time.Now())
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
