package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pcb-production-api/internal/application/dto"
	"github.com/jhoicas/pcb-production-api/internal/application/shortage"
)

// AnalyticsHandler maneja las consultas de análisis (solo lectura).
type AnalyticsHandler struct {
	analyze *shortage.AnalyzeUseCase
}

// NewAnalyticsHandler construye el handler de analítica.
func NewAnalyticsHandler(analyze *shortage.AnalyzeUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analyze: analyze}
}

// Shortage godoc
// @Summary      Análisis de faltantes
// @Description  Una fila por componente: demanda agregada de BOM, faltante, porcentaje
//
//	y clasificación LOW STOCK/OK contra el piso mensual. Orden estable por part_code.
//
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ShortageReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/shortage [get]
func (h *AnalyticsHandler) Shortage(c *fiber.Ctx) error {
	report, err := h.analyze.Analyze(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Kind: "STORAGE_FAILURE", Detail: "no se pudo generar el análisis"})
	}
	return c.JSON(report)
}
