package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ShortageRow es una fila del análisis de faltantes: un componente con su demanda
// agregada de BOM en toda la línea de productos y la clasificación de stock.
type ShortageRow struct {
	ComponentID             string
	PartCode                string
	ComponentName           string
	CurrentStock            int64
	MonthlyRequiredQuantity int64
	TotalRequired           int64
	Shortage                int64
	ShortagePercentage      decimal.Decimal
	StockStatus             string
}

// ShortageRepository define el puerto de solo lectura del análisis de faltantes.
// La consulta agrega filas de requerimiento de BOM (no historial de consumo) y
// nunca muta estado; puede correr concurrente con producciones en vuelo.
type ShortageRepository interface {
	// Analyze devuelve una fila por componente no archivado, en orden estable por
	// part_code (mismo estado de BD => mismo resultado).
	Analyze(ctx context.Context) ([]ShortageRow, error)
}
