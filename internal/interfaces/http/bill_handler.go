package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/usecase"
)

// BillHandler maneja facturas de proveedor (protegido).
type BillHandler struct {
	billUC *usecase.BillUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(billUC *usecase.BillUseCase) *BillHandler {
	return &BillHandler{billUC: billUC}
}

// Create godoc
// @Summary      Registrar factura de proveedor
// @Tags         bills
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBillRequest  true  "Datos de la factura"
// @Success      201   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bills [post]
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.billUC.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar facturas de proveedor
// @Tags         bills
// @Security     Bearer
// @Produce      json
// @Param        vendor_id  query  string  false  "Filtrar por proveedor"
// @Success      200  {object}  dto.BillListResponse
// @Router       /api/bills [get]
func (h *BillHandler) List(c *fiber.Ctx) error {
	out, err := h.billUC.List(c.Context(), pageFromQuery(c), c.Query("vendor_id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura de proveedor
// @Tags         bills
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.BillResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [get]
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.billUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar factura de proveedor (vencimiento, abonos, notas)
// @Tags         bills
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la factura"
// @Param        body  body  dto.UpdateBillRequest  true  "Campos a editar"
// @Success      200   {object}  dto.BillResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [put]
func (h *BillHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.billUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar factura de proveedor
// @Tags         bills
// @Security     Bearer
// @Param        id  path  string  true  "ID de la factura"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [delete]
func (h *BillHandler) Delete(c *fiber.Ctx) error {
	if err := h.billUC.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
