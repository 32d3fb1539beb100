package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/usecase"
)

// ExpenseHandler maneja gastos operativos y sus categorías (protegido).
type ExpenseHandler struct {
	expenseUC *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(expenseUC *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{expenseUC: expenseUC}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.expenseUC.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos con filtro opcional por rango de fechas
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200   {object}  dto.ExpenseListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	from, err := optionalDateQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from: formato esperado YYYY-MM-DD"})
	}
	to, err := optionalDateQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to: formato esperado YYYY-MM-DD"})
	}
	out, err := h.expenseUC.List(c.Context(), pageFromQuery(c), from, to)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del gasto"
// @Param        body  body  dto.ExpenseRequest  true  "Campos a editar"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.expenseUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar gasto
// @Tags         expenses
// @Security     Bearer
// @Param        id  path  string  true  "ID del gasto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.expenseUC.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCategory godoc
// @Summary      Crear categoría de gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NamedEntityRequest  true  "Nombre"
// @Success      201   {object}  dto.NamedEntityResponse
// @Router       /api/expense-categories [post]
func (h *ExpenseHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.NamedEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.expenseUC.CreateCategory(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías de gasto
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NamedEntityResponse
// @Router       /api/expense-categories [get]
func (h *ExpenseHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.expenseUC.ListCategories(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría de gasto
// @Tags         expenses
// @Security     Bearer
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Router       /api/expense-categories/{id} [delete]
func (h *ExpenseHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.expenseUC.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// optionalDateQuery parsea un query param de fecha YYYY-MM-DD; nil si está vacío.
func optionalDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
