package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
)

// Estados de stock del reporte de faltantes.
const (
	StatusLowStock = "LOW STOCK"
	StatusOK       = "OK"
)

// TotalRequired agrega la demanda de BOM de un componente a través de todas las
// PCBs que lo usan: suma filas de requerimiento (quantity_required por unidad),
// nunca historial de consumo ni de producción. Es la misma agregación que hace
// COALESCE(SUM(pc.quantity_required), 0) en la consulta de faltantes.
func TotalRequired(entries []entity.BOMEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.QuantityRequired
	}
	return total
}

// Shortage devuelve el faltante de un componente: demanda agregada de BOM menos
// stock actual, nunca negativo (si el stock supera la demanda, el faltante es 0).
func Shortage(totalRequired, currentStock int64) int64 {
	s := totalRequired - currentStock
	if s < 0 {
		return 0
	}
	return s
}

// ShortagePercentage devuelve el porcentaje de faltante sobre la demanda total,
// redondeado a 2 decimales. Con demanda cero devuelve 0 (no hay división por cero:
// un componente sin filas de BOM es un valor normal, no un error).
func ShortagePercentage(totalRequired, currentStock int64) decimal.Decimal {
	if totalRequired <= 0 {
		return decimal.Zero
	}
	shortage := decimal.NewFromInt(Shortage(totalRequired, currentStock))
	return shortage.
		Div(decimal.NewFromInt(totalRequired)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// StockStatus clasifica el componente contra su piso mensual de reposición:
// LOW STOCK si current_stock < 20% de monthly_required_quantity, si no OK.
// Usa el requerimiento mensual, no la demanda de BOM: son dos señales deliberadamente
// independientes y no deben unificarse.
func StockStatus(currentStock, monthlyRequired int64) string {
	// current < 0.2*monthly, en enteros: 5*current < monthly
	if currentStock*5 < monthlyRequired {
		return StatusLowStock
	}
	return StatusOK
}
