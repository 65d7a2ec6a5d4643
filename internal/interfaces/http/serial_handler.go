package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/warehouse"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// SerialNumberHandler maneja las peticiones HTTP del registro de números de serie (protegido).
type SerialNumberHandler struct {
	uc *warehouse.SerialNumberUseCase
}

// NewSerialNumberHandler construye el handler.
func NewSerialNumberHandler(uc *warehouse.SerialNumberUseCase) *SerialNumberHandler {
	return &SerialNumberHandler{uc: uc}
}

// List godoc
// @Summary      Listar unidades serializadas de un repuesto
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        id            path   string  true   "ID del repuesto"
// @Param        location      query  string  false  "MAIN_WAREHOUSE | TECHNICIAN | USED"
// @Param        technician_id query  string  false  "filtrar por técnico"
// @Param        status        query  string  false  "AVAILABLE | IN_USE | LOST"
// @Success      200  {array}   dto.SerialNumberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/items/{id}/serial-numbers [get]
func (h *SerialNumberHandler) List(c *fiber.Ctx) error {
	filter := repository.SerialNumberFilter{
		Location:     c.Query("location"),
		TechnicianID: c.Query("technician_id"),
		Status:       c.Query("status"),
	}
	resp, err := h.uc.List(c.Params("id"), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Add godoc
// @Summary      Dar de alta números de serie (manual o autogenerado)
// @Description  Exactamente un modo: manual con la lista de series, o auto con el conteo
// @Description  (requiere auto_sn + sn_prefix en el ítem). Queda auditado como ADD_STOCK.
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del repuesto"
// @Param        body  body  dto.AddSerialNumbersRequest true  "manual o auto"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouse/items/{id}/serial-numbers [post]
func (h *SerialNumberHandler) Add(c *fiber.Ctx) error {
	var in dto.AddSerialNumbersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.Add(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
