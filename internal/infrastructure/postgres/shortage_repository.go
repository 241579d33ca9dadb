package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

var _ repository.ShortageRepository = (*ShortageRepo)(nil)

// ShortageRepo consultas de solo lectura para el análisis de faltantes.
type ShortageRepo struct {
	pool *pgxpool.Pool
}

// NewShortageRepository construye el adaptador de análisis.
func NewShortageRepository(pool *pgxpool.Pool) *ShortageRepo {
	return &ShortageRepo{pool: pool}
}

// Analyze agrega la demanda de BOM por componente y la contrasta con el stock.
// total_required suma filas de requerimiento (demanda de la línea completa), no
// historial de consumo. El faltante se recorta a cero con GREATEST; el porcentaje
// se protege contra división por cero (demanda cero => 0, no error). LOW STOCK usa
// el piso mensual independiente (20%), no la demanda de BOM. El LEFT JOIN asegura
// una fila por componente aunque ninguna PCB lo use; ORDER BY part_code da un
// orden estable para el mismo estado de BD.
func (r *ShortageRepo) Analyze(ctx context.Context) ([]repository.ShortageRow, error) {
	const query = `
	SELECT
	    c.id,
	    c.part_code,
	    c.component_name,
	    c.current_stock,
	    c.monthly_required_quantity,
	    COALESCE(SUM(pc.quantity_required), 0)                                AS total_required,
	    GREATEST(COALESCE(SUM(pc.quantity_required), 0) - c.current_stock, 0) AS shortage,
	    CASE
	        WHEN COALESCE(SUM(pc.quantity_required), 0) > 0
	        THEN ROUND(
	            GREATEST(COALESCE(SUM(pc.quantity_required), 0) - c.current_stock, 0)::numeric
	            / SUM(pc.quantity_required) * 100, 2
	        )
	        ELSE 0
	    END                                                                   AS shortage_percentage,
	    CASE
	        WHEN c.current_stock < (0.2 * c.monthly_required_quantity)
	        THEN 'LOW STOCK'
	        ELSE 'OK'
	    END                                                                   AS stock_status
	FROM components c
	LEFT JOIN pcb_components pc ON pc.component_id = c.id
	WHERE c.archived_at IS NULL
	GROUP BY c.id
	ORDER BY c.part_code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("shortage.Analyze: %w", err)
	}
	defer rows.Close()

	var results []repository.ShortageRow
	for rows.Next() {
		var row repository.ShortageRow
		if err := rows.Scan(
			&row.ComponentID,
			&row.PartCode,
			&row.ComponentName,
			&row.CurrentStock,
			&row.MonthlyRequiredQuantity,
			&row.TotalRequired,
			&row.Shortage,
			&row.ShortagePercentage,
			&row.StockStatus,
		); err != nil {
			return nil, fmt.Errorf("shortage.Analyze scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
