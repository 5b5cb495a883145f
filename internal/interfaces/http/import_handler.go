package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/avelio/profitab-api/internal/application/dto"
	"github.com/avelio/profitab-api/internal/application/usecase"
	"github.com/avelio/profitab-api/internal/domain"
)

// ImportHandler stößt den tageweisen Bestellimport an.
type ImportHandler struct {
	uc *usecase.ImportUseCase
}

// NewImportHandler baut den Import-Handler.
func NewImportHandler(uc *usecase.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Run POST /api/import, importiert den Zeitraum synchron und liefert das
// Ergebnis inkl. der nachzuholenden Tage.
func (h *ImportHandler) Run(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.From == "" || in.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from und to (YYYY-MM-DD) sind erforderlich"})
	}
	out, err := h.uc.Run(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
