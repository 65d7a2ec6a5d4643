package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/warehouse"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
)

// TechnicianHandler vistas de stock en poder de técnicos (protegido).
type TechnicianHandler struct {
	uc *warehouse.TechnicianStockUseCase
}

// NewTechnicianHandler construye el handler.
func NewTechnicianHandler(uc *warehouse.TechnicianStockUseCase) *TechnicianHandler {
	return &TechnicianHandler{uc: uc}
}

// List godoc
// @Summary      Listar técnicos con su stock y valor total
// @Tags         technicians
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.TechnicianSummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/warehouse/technicians [get]
func (h *TechnicianHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.ListWithStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetDetail godoc
// @Summary      Detalle del stock de un técnico
// @Description  Incluye las unidades serializadas disponibles en su poder.
// @Description  Un técnico solo puede consultar su propio stock.
// @Tags         technicians
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del técnico"
// @Success      200  {object}  dto.TechnicianSummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/technicians/{id} [get]
func (h *TechnicianHandler) GetDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	if GetRole(c) == entity.RoleTechnician && GetUserID(c) != id {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar su propio stock"})
	}
	resp, err := h.uc.GetDetail(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
