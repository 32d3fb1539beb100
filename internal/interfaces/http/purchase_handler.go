package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/procurement"
)

// PurchaseHandler maneja órdenes de compra y recepciones (protegido).
type PurchaseHandler struct {
	orderUC   *procurement.PurchaseOrderUseCase
	receiveUC *procurement.ReceiveUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(orderUC *procurement.PurchaseOrderUseCase, receiveUC *procurement.ReceiveUseCase) *PurchaseHandler {
	return &PurchaseHandler{orderUC: orderUC, receiveUC: receiveUC}
}

// CreateOrder godoc
// @Summary      Crear orden de compra
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.orderUC.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOrders godoc
// @Summary      Listar órdenes de compra
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.orderUC.List(c.Context(), pageFromQuery(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetOrder godoc
// @Summary      Obtener orden de compra por ID
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseHandler) GetOrder(c *fiber.Ctx) error {
	out, err := h.orderUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteOrder godoc
// @Summary      Eliminar orden de compra
// @Tags         purchases
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [delete]
func (h *PurchaseHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.orderUC.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateReceive godoc
// @Summary      Registrar recepción y conciliar contra la orden
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiveRequest  true  "Datos de la recepción"
// @Success      201   {object}  dto.PurchaseReceiveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-receives [post]
func (h *PurchaseHandler) CreateReceive(c *fiber.Ctx) error {
	var in dto.CreateReceiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.receiveUC.CreateReceive(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReceives godoc
// @Summary      Listar recepciones
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        vendor_id  query  string  false  "Filtrar por proveedor"
// @Success      200  {object}  dto.PurchaseReceiveListResponse
// @Router       /api/purchase-receives [get]
func (h *PurchaseHandler) ListReceives(c *fiber.Ctx) error {
	out, err := h.receiveUC.List(c.Context(), pageFromQuery(c), c.Query("vendor_id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetReceive godoc
// @Summary      Obtener recepción por ID
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.PurchaseReceiveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-receives/{id} [get]
func (h *PurchaseHandler) GetReceive(c *fiber.Ctx) error {
	out, err := h.receiveUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteReceive godoc
// @Summary      Eliminar registro de recepción
// @Tags         purchases
// @Security     Bearer
// @Param        id  path  string  true  "ID de la recepción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-receives/{id} [delete]
func (h *PurchaseHandler) DeleteReceive(c *fiber.Ctx) error {
	if err := h.receiveUC.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
