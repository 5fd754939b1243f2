// Package analytics contiene los casos de uso de lectura para las métricas
// agregadas del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de inventario para el dashboard.
//
// Fuente de datos: MetricsRepository (consultas read-only).
// Los cuatro conteos son independientes entre sí: se ejecutan en paralelo y el
// resultado puede estar momentáneamente desfasado respecto a escrituras en vuelo.
type DashboardUseCase struct {
	metricsRepo repository.MetricsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(metricsRepo repository.MetricsRepository) *DashboardUseCase {
	return &DashboardUseCase{metricsRepo: metricsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. CountProducts                  → TotalProducts
//  2. CountLowStock                  → LowStockProducts
//  3. CountMovementsByType(entry)    → EntryMovements
//  4. CountMovementsByType(exit)     → ExitMovements
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}

	productsCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	entriesCh := make(chan countResult, 1)
	exitsCh := make(chan countResult, 1)

	go func() {
		n, err := uc.metricsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.metricsRepo.CountLowStock(ctx)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.metricsRepo.CountMovementsByType(ctx, entity.MovementTypeEntry)
		entriesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.metricsRepo.CountMovementsByType(ctx, entity.MovementTypeExit)
		exitsCh <- countResult{n, err}
	}()

	products := <-productsCh
	lowStock := <-lowStockCh
	entries := <-entriesCh
	exits := <-exitsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total productos: %w", products.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if entries.err != nil {
		return nil, fmt.Errorf("dashboard: entradas: %w", entries.err)
	}
	if exits.err != nil {
		return nil, fmt.Errorf("dashboard: salidas: %w", exits.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:    products.n,
		LowStockProducts: lowStock.n,
		EntryMovements:   entries.n,
		ExitMovements:    exits.n,
	}, nil
}
