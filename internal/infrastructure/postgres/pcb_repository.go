package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

var _ repository.PCBRepository = (*PCBRepo)(nil)

// PCBRepo implementación de PCBRepository sobre PostgreSQL (usable con pool o tx).
type PCBRepo struct {
	q Querier
}

// NewPCBRepository construye el adaptador del maestro de PCBs. Pasar pool o tx (Querier).
func NewPCBRepository(q Querier) *PCBRepo {
	return &PCBRepo{q: q}
}

// GetByID obtiene una PCB por ID.
func (r *PCBRepo) GetByID(id string) (*entity.PCB, error) {
	query := `SELECT id, pcb_part_code, status, created_at, updated_at FROM pcbs WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get pcb")
}

// GetByPartCode obtiene una PCB por código de parte.
func (r *PCBRepo) GetByPartCode(partCode string) (*entity.PCB, error) {
	query := `SELECT id, pcb_part_code, status, created_at, updated_at FROM pcbs WHERE pcb_part_code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, partCode), "get pcb by part code")
}

// Upsert inserta o actualiza por pcb_part_code.
func (r *PCBRepo) Upsert(p *entity.PCB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO pcbs (id, pcb_part_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (pcb_part_code)
		DO UPDATE SET status = EXCLUDED.status, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.PartCode, p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert pcb: %w", err)
	}
	return nil
}

// List lista PCBs por código de parte con paginación.
func (r *PCBRepo) List(limit, offset int) ([]*entity.PCB, error) {
	query := `SELECT id, pcb_part_code, status, created_at, updated_at
		FROM pcbs ORDER BY pcb_part_code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pcbs: %w", err)
	}
	defer rows.Close()
	var list []*entity.PCB
	for rows.Next() {
		var p entity.PCB
		if err := rows.Scan(&p.ID, &p.PartCode, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pcb: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PCBRepo) scanOne(row pgx.Row, op string) (*entity.PCB, error) {
	var p entity.PCB
	err := row.Scan(&p.ID, &p.PartCode, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
