package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/reports"
)

// ReportHandler maneja la generación de reportes PDF (protegido).
type ReportHandler struct {
	lowStockUC *reports.LowStockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(lowStockUC *reports.LowStockReportUseCase) *ReportHandler {
	return &ReportHandler{lowStockUC: lowStockUC}
}

// LowStockPDF godoc
// @Summary      Reporte PDF de stock bajo
// @Description  PDF con los productos en stock bajo y la cantidad de pedido sugerida.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock.pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.lowStockUC.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("stock-bajo-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
