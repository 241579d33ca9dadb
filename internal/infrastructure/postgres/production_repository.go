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

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación de los registros de producción sobre PostgreSQL.
// Append-only: solo INSERT y SELECT.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create persiste un registro de producción.
func (r *ProductionRepo) Create(rec *entity.ProductionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	query := `
		INSERT INTO production_entries (id, transaction_id, pcb_id, quantity_produced, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.TransactionID, rec.PCBID, rec.QuantityProduced, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create production record: %w", err)
	}
	return nil
}

// List lista registros de producción en un rango de fechas.
func (r *ProductionRepo) List(from, to *time.Time, limit, offset int) ([]*entity.ProductionRecord, error) {
	query := `
		SELECT id, transaction_id, pcb_id, quantity_produced, created_at
		FROM production_entries WHERE true`
	args := []any{}
	pos := 1
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
		return nil, fmt.Errorf("list production entries: %w", err)
	}
	defer rows.Close()
	return scanProductionRows(rows)
}

// ListByPCB lista registros de producción de una PCB en un rango de fechas.
func (r *ProductionRepo) ListByPCB(pcbID string, from, to *time.Time, limit, offset int) ([]*entity.ProductionRecord, error) {
	query := `
		SELECT id, transaction_id, pcb_id, quantity_produced, created_at
		FROM production_entries WHERE pcb_id = $1`
	args := []any{pcbID}
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
		return nil, fmt.Errorf("list production by pcb: %w", err)
	}
	defer rows.Close()
	return scanProductionRows(rows)
}

func scanProductionRows(rows pgx.Rows) ([]*entity.ProductionRecord, error) {
	var list []*entity.ProductionRecord
	for rows.Next() {
		var rec entity.ProductionRecord
		if err := rows.Scan(&rec.ID, &rec.TransactionID, &rec.PCBID, &rec.QuantityProduced, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
