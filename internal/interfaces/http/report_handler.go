package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/usecase"
)

// ReportHandler consultas de dashboard (protegido).
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reportUC *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// EntityCounts godoc
// @Summary      Totales por colección
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EntityCountsResponse
// @Router       /api/reports/counts [get]
func (h *ReportHandler) EntityCounts(c *fiber.Ctx) error {
	out, err := h.reportUC.EntityCounts(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// StockCounts godoc
// @Summary      Productos con y sin existencias
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockCountsResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockCounts(c *fiber.Ctx) error {
	out, err := h.reportUC.StockCounts(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// SalesSummary godoc
// @Summary      Resumen de facturación en un rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (YYYY-MM-DD); defecto 30 días atrás"
// @Param        to    query  string  false  "Fecha final (YYYY-MM-DD); defecto hoy"
// @Success      200   {object}  dto.SalesSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales-summary [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	from, to, err := rangeFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to: formato esperado YYYY-MM-DD"})
	}
	out, err := h.reportUC.SalesSummary(c.Context(), from, to)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos en un rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "Fecha inicial (YYYY-MM-DD); defecto 30 días atrás"
// @Param        to     query  string  false  "Fecha final (YYYY-MM-DD); defecto hoy"
// @Param        limit  query  int     false  "Máximo de productos"  default(10)
// @Success      200    {array}  dto.TopProductResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	from, to, err := rangeFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to: formato esperado YYYY-MM-DD"})
	}
	out, err := h.reportUC.TopProducts(c.Context(), from, to, c.QueryInt("limit", 10))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// rangeFromQuery parsea from/to; sin parámetros el rango son los últimos 30
// días. El tope del rango se extiende al final del día para incluir las
// ventas de la fecha "to".
func rangeFromQuery(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	to := now
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	from := to.AddDate(0, 0, -30)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	return from, to, nil
}
