package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

var _ repository.ConsumptionRepository = (*ConsumptionRepo)(nil)

// ConsumptionRepo implementación del libro de consumo sobre PostgreSQL.
// Solo INSERT y SELECT: las filas nunca se actualizan ni borran.
type ConsumptionRepo struct {
	q Querier
}

// NewConsumptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsumptionRepository(q Querier) *ConsumptionRepo {
	return &ConsumptionRepo{q: q}
}

// Create persiste una fila del libro de consumo.
func (r *ConsumptionRepo) Create(rec *entity.ConsumptionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	query := `
		INSERT INTO consumption_history (id, transaction_id, component_id, pcb_id, quantity_deducted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.TransactionID, rec.ComponentID, rec.PCBID, rec.QuantityDeducted, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create consumption record: %w", err)
	}
	return nil
}

// ListByComponent lista deducciones de un componente en un rango de fechas.
func (r *ConsumptionRepo) ListByComponent(componentID string, from, to *time.Time, limit, offset int) ([]*entity.ConsumptionRecord, error) {
	return r.list(`component_id`, componentID, from, to, limit, offset)
}

// ListByPCB lista deducciones originadas por corridas de una PCB.
func (r *ConsumptionRepo) ListByPCB(pcbID string, from, to *time.Time, limit, offset int) ([]*entity.ConsumptionRecord, error) {
	return r.list(`pcb_id`, pcbID, from, to, limit, offset)
}

// ListByTransaction devuelve las filas de una corrida puntual, en orden de inserción.
func (r *ConsumptionRepo) ListByTransaction(transactionID string) ([]*entity.ConsumptionRecord, error) {
	query := `
		SELECT id, transaction_id, component_id, pcb_id, quantity_deducted, created_at
		FROM consumption_history WHERE transaction_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list by transaction: %w", err)
	}
	defer rows.Close()
	return scanConsumptionRows(rows)
}

func (r *ConsumptionRepo) list(column, value string, from, to *time.Time, limit, offset int) ([]*entity.ConsumptionRecord, error) {
	query := fmt.Sprintf(`
		SELECT id, transaction_id, component_id, pcb_id, quantity_deducted, created_at
		FROM consumption_history WHERE %s = $1`, column)
	args := []any{value}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list consumption by %s: %w", column, err)
	}
	defer rows.Close()
	return scanConsumptionRows(rows)
}

func scanConsumptionRows(rows pgx.Rows) ([]*entity.ConsumptionRecord, error) {
	var list []*entity.ConsumptionRecord
	for rows.Next() {
		var rec entity.ConsumptionRecord
		if err := rows.Scan(&rec.ID, &rec.TransactionID, &rec.ComponentID, &rec.PCBID,
			&rec.QuantityDeducted, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan consumption record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
