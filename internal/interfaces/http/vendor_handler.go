package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/usecase"
)

// VendorHandler maneja las peticiones HTTP de proveedores (protegido).
type VendorHandler struct {
	vendorUC *usecase.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(vendorUC *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{vendorUC: vendorUC}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendorRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.VendorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendors [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var in dto.VendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.vendorUC.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VendorListResponse
// @Router       /api/vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	out, err := h.vendorUC.List(c.Context(), pageFromQuery(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.VendorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [get]
func (h *VendorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.vendorUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar proveedor
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del proveedor"
// @Param        body  body  dto.VendorRequest  true  "Campos a editar"
// @Success      200   {object}  dto.VendorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [put]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	var in dto.VendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.vendorUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         vendors
// @Security     Bearer
// @Param        id  path  string  true  "ID del proveedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [delete]
func (h *VendorHandler) Delete(c *fiber.Ctx) error {
	if err := h.vendorUC.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
