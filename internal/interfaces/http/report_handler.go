package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/avelio/profitab-api/internal/application/dto"
	"github.com/avelio/profitab-api/internal/application/usecase"
	"github.com/avelio/profitab-api/internal/domain"
)

// ReportHandler bedient die Tagesauswertung (JSON und PDF).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler baut den Report-Handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Overview GET /api/reports/overview?from=…&to=…&platform=…&country=…
func (h *ReportHandler) Overview(c *fiber.Ctx) error {
	in, errResp := parseReportRequest(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	out, err := h.uc.Overview(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// OverviewPDF GET /api/reports/overview/pdf, dieselbe Auswertung als Dokument.
func (h *ReportHandler) OverviewPDF(c *fiber.Ctx) error {
	in, errResp := parseReportRequest(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	pdf, err := h.uc.OverviewPDF(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="profitab_`+in.From+`_`+in.To+`.pdf"`)
	return c.Send(pdf)
}

func parseReportRequest(c *fiber.Ctx) (dto.ReportRequest, *dto.ErrorResponse) {
	in := dto.ReportRequest{
		From:     c.Query("from"),
		To:       c.Query("to"),
		Platform: c.Query("platform"),
		Country:  c.Query("country"),
	}
	if in.From == "" || in.To == "" {
		return in, &dto.ErrorResponse{Code: "VALIDATION", Message: "from und to (YYYY-MM-DD) sind erforderlich"}
	}
	return in, nil
}
