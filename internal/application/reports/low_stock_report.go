// Package reports contiene los casos de uso de generación de reportes.
package reports

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LowStockPDFGenerator puerto para la generación del PDF del reporte de stock bajo.
type LowStockPDFGenerator interface {
	GenerateLowStockReport(ctx context.Context, products []*entity.Product, generatedAt time.Time) ([]byte, error)
}

// LowStockReportUseCase genera el reporte de reposición: los productos en stock
// bajo según el snapshot actual, listos para imprimir.
type LowStockReportUseCase struct {
	productRepo repository.ProductRepository
	generator   LowStockPDFGenerator
}

// NewLowStockReportUseCase construye el caso de uso.
func NewLowStockReportUseCase(productRepo repository.ProductRepository, generator LowStockPDFGenerator) *LowStockReportUseCase {
	return &LowStockReportUseCase{productRepo: productRepo, generator: generator}
}

// Generate devuelve los bytes del PDF con los productos en stock bajo.
func (uc *LowStockReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateLowStockReport(ctx, products, time.Now())
}
