package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/avelio/profitab-api/internal/application/dto"
	"github.com/avelio/profitab-api/internal/application/usecase"
	"github.com/avelio/profitab-api/internal/domain"
)

// CostsHandler bedient die Kostentabellen: GET liest, PUT ersetzt die ganze
// Tabelle (last write wins).
type CostsHandler struct {
	uc *usecase.CostsUseCase
}

// NewCostsHandler baut den Kostentabellen-Handler.
func NewCostsHandler(uc *usecase.CostsUseCase) *CostsHandler {
	return &CostsHandler{uc: uc}
}

// GetMaterial GET /api/costs/material
func (h *CostsHandler) GetMaterial(c *fiber.Ctx) error {
	rows, err := h.uc.GetMaterialCosts(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}

// PutMaterial PUT /api/costs/material
func (h *CostsHandler) PutMaterial(c *fiber.Ctx) error {
	var rows []dto.MaterialCostRow
	if err := c.BodyParser(&rows); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.ReplaceMaterialCosts(c.UserContext(), rows); err != nil {
		return replaceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFulfillment GET /api/costs/fulfillment
func (h *CostsHandler) GetFulfillment(c *fiber.Ctx) error {
	body, err := h.uc.GetFulfillmentCosts(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(body)
}

// PutFulfillment PUT /api/costs/fulfillment
func (h *CostsHandler) PutFulfillment(c *fiber.Ctx) error {
	var body dto.FulfillmentCostBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.ReplaceFulfillmentCosts(c.UserContext(), body); err != nil {
		return replaceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetTransaction GET /api/costs/transaction
func (h *CostsHandler) GetTransaction(c *fiber.Ctx) error {
	rows, err := h.uc.GetTransactionCosts(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}

// PutTransaction PUT /api/costs/transaction
func (h *CostsHandler) PutTransaction(c *fiber.Ctx) error {
	var rows []dto.TransactionCostRow
	if err := c.BodyParser(&rows); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.ReplaceTransactionCosts(c.UserContext(), rows); err != nil {
		return replaceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMarketing GET /api/costs/marketing
func (h *CostsHandler) GetMarketing(c *fiber.Ctx) error {
	rows, err := h.uc.GetMarketingCosts(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}

// PutMarketing PUT /api/costs/marketing
func (h *CostsHandler) PutMarketing(c *fiber.Ctx) error {
	var rows []dto.MarketingCostRowBody
	if err := c.BodyParser(&rows); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.ReplaceMarketingCosts(c.UserContext(), rows); err != nil {
		return replaceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ungültiger request-körper"})
}

func replaceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return internalError(c, err)
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
