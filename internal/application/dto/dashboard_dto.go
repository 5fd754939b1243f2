package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Cuatro conteos independientes; pueden estar momentáneamente desfasados
// respecto a un movimiento en vuelo (lectura sin bloqueo).
type DashboardSummaryDTO struct {
	TotalProducts    int `json:"total_products"`
	LowStockProducts int `json:"low_stock_products"`
	EntryMovements   int `json:"entry_movements"`
	ExitMovements    int `json:"exit_movements"`
}
