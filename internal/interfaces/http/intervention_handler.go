package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/intervention"
)

// InterventionHandler consumo de repuestos en intervenciones (protegido).
type InterventionHandler struct {
	uc *intervention.PartsUseCase
}

// NewInterventionHandler construye el handler.
func NewInterventionHandler(uc *intervention.PartsUseCase) *InterventionHandler {
	return &InterventionHandler{uc: uc}
}

// AddPart godoc
// @Summary      Registrar repuestos usados en una intervención
// @Description  Descuenta del stock del técnico asignado (movimiento USE) y
// @Description  vincula el consumo a la intervención en la misma transacción.
// @Tags         interventions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la intervención"
// @Param        body  body  dto.AddInterventionPartRequest true  "item_id, quantity y serial_number_ids para serializados"
// @Success      201   {object}  dto.InterventionPartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/interventions/{id}/parts [post]
func (h *InterventionHandler) AddPart(c *fiber.Ctx) error {
	var in dto.AddInterventionPartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.ConsumeForIntervention(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListParts godoc
// @Summary      Listar repuestos consumidos en una intervención
// @Tags         interventions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la intervención"
// @Success      200  {array}   dto.InterventionPartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/interventions/{id}/parts [get]
func (h *InterventionHandler) ListParts(c *fiber.Ctx) error {
	resp, err := h.uc.ListParts(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
