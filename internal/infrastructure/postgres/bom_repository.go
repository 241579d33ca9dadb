package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/pcb-production-api/internal/domain"
	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación de BOMRepository sobre PostgreSQL (usable con pool o tx).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador de la BOM. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// Upsert inserta una fila de BOM. El par (pcb, componente) tiene UNIQUE: un
// duplicado es no-op (ON CONFLICT DO NOTHING), nunca suma cantidades.
func (r *BOMRepo) Upsert(e *entity.BOMEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO pcb_components (id, pcb_id, component_id, quantity_required, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (pcb_id, component_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, e.ID, e.PCBID, e.ComponentID, e.QuantityRequired, e.CreatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("upsert bom entry: %w", err)
	}
	return nil
}

// ListByPCB lista las filas de BOM de una PCB.
func (r *BOMRepo) ListByPCB(pcbID string) ([]*entity.BOMEntry, error) {
	query := `
		SELECT pc.id, pc.pcb_id, pc.component_id, pc.quantity_required, pc.created_at
		FROM pcb_components pc
		JOIN components c ON c.id = pc.component_id
		WHERE pc.pcb_id = $1
		ORDER BY c.part_code`
	rows, err := r.q.Query(context.Background(), query, pcbID)
	if err != nil {
		return nil, fmt.Errorf("list bom: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOMEntry
	for rows.Next() {
		var e entity.BOMEntry
		if err := rows.Scan(&e.ID, &e.PCBID, &e.ComponentID, &e.QuantityRequired, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListRequirementsForUpdate lee la BOM unida con el stock actual y bloquea las
// filas de components (FOR UPDATE OF c). El ORDER BY part_code fija un orden de
// adquisición de locks determinista: dos producciones que comparten componentes
// los bloquean en el mismo orden y no pueden interbloquearse.
func (r *BOMRepo) ListRequirementsForUpdate(pcbID string) ([]*entity.BOMRequirement, error) {
	query := `
		SELECT c.id, c.part_code, c.component_name, pc.quantity_required, c.current_stock
		FROM pcb_components pc
		JOIN components c ON c.id = pc.component_id
		WHERE pc.pcb_id = $1
		ORDER BY c.part_code
		FOR UPDATE OF c`
	rows, err := r.q.Query(context.Background(), query, pcbID)
	if err != nil {
		return nil, fmt.Errorf("lock bom requirements: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOMRequirement
	for rows.Next() {
		var req entity.BOMRequirement
		if err := rows.Scan(&req.ComponentID, &req.PartCode, &req.ComponentName, &req.QuantityRequired, &req.CurrentStock); err != nil {
			return nil, fmt.Errorf("scan bom requirement: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}
