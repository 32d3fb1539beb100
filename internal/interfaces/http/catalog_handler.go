package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/usecase"
)

// CatalogHandler maneja categorías, subcategorías, marcas y condiciones.
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// --- Categorías ---

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NamedEntityRequest  true  "Nombre e imagen"
// @Success      201   {object}  dto.NamedEntityResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.NamedEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogUC.CreateCategory(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NamedEntityResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.catalogUC.ListCategories(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateCategory godoc
// @Summary      Editar categoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la categoría"
// @Param        body  body  dto.NamedEntityRequest  true  "Campos a editar"
// @Success      200   {object}  dto.NamedEntityResponse
// @Router       /api/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.NamedEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogUC.UpdateCategory(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Router       /api/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.catalogUC.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Subcategorías ---

// CreateSubcategory godoc
// @Summary      Crear subcategoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubcategoryRequest  true  "Nombre y categoría padre"
// @Success      201   {object}  dto.SubcategoryResponse
// @Router       /api/subcategories [post]
func (h *CatalogHandler) CreateSubcategory(c *fiber.Ctx) error {
	var in dto.SubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogUC.CreateSubcategory(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSubcategories godoc
// @Summary      Listar subcategorías
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SubcategoryResponse
// @Router       /api/subcategories [get]
func (h *CatalogHandler) ListSubcategories(c *fiber.Ctx) error {
	out, err := h.catalogUC.ListSubcategories(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteSubcategory godoc
// @Summary      Eliminar subcategoría
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID de la subcategoría"
// @Success      204
// @Router       /api/subcategories/{id} [delete]
func (h *CatalogHandler) DeleteSubcategory(c *fiber.Ctx) error {
	if err := h.catalogUC.DeleteSubcategory(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Marcas ---

// CreateBrand godoc
// @Summary      Crear marca
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NamedEntityRequest  true  "Nombre e imagen"
// @Success      201   {object}  dto.NamedEntityResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/brands [post]
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.NamedEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogUC.CreateBrand(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBrands godoc
// @Summary      Listar marcas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NamedEntityResponse
// @Router       /api/brands [get]
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	out, err := h.catalogUC.ListBrands(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateBrand godoc
// @Summary      Editar marca
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la marca"
// @Param        body  body  dto.NamedEntityRequest  true  "Campos a editar"
// @Success      200   {object}  dto.NamedEntityResponse
// @Router       /api/brands/{id} [put]
func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	var in dto.NamedEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogUC.UpdateBrand(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteBrand godoc
// @Summary      Eliminar marca
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID de la marca"
// @Success      204
// @Router       /api/brands/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	if err := h.catalogUC.DeleteBrand(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Condiciones ---

// CreateCondition godoc
// @Summary      Crear condición
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NamedEntityRequest  true  "Nombre"
// @Success      201   {object}  dto.NamedEntityResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/conditions [post]
func (h *CatalogHandler) CreateCondition(c *fiber.Ctx) error {
	var in dto.NamedEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogUC.CreateCondition(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListConditions godoc
// @Summary      Listar condiciones
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NamedEntityResponse
// @Router       /api/conditions [get]
func (h *CatalogHandler) ListConditions(c *fiber.Ctx) error {
	out, err := h.catalogUC.ListConditions(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteCondition godoc
// @Summary      Eliminar condición
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID de la condición"
// @Success      204
// @Router       /api/conditions/{id} [delete]
func (h *CatalogHandler) DeleteCondition(c *fiber.Ctx) error {
	if err := h.catalogUC.DeleteCondition(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
