package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pcb-production-api/internal/domain"
	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

// ComponentRepo implementación de ComponentRepository sobre PostgreSQL (usable con pool o tx).
type ComponentRepo struct {
	q Querier
}

// NewComponentRepository construye el adaptador de componentes. Pasar pool o tx (Querier).
func NewComponentRepository(q Querier) *ComponentRepo {
	return &ComponentRepo{q: q}
}

const componentColumns = `id, part_code, component_name, current_stock, monthly_required_quantity,
		ok_count, scrap_count, total_count, nff_count, archived_at, created_at, updated_at`

// GetByID obtiene un componente por ID.
func (r *ComponentRepo) GetByID(id string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get component")
}

// GetByPartCode obtiene un componente por código de parte.
func (r *ComponentRepo) GetByPartCode(partCode string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE part_code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, partCode), "get component by part code")
}

// Upsert inserta o actualiza por part_code (misma semántica que la importación
// masiva del catálogo: la fila importada pisa los valores existentes).
func (r *ComponentRepo) Upsert(c *entity.Component) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO components (id, part_code, component_name, current_stock, monthly_required_quantity,
			ok_count, scrap_count, total_count, nff_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (part_code)
		DO UPDATE SET
			component_name = EXCLUDED.component_name,
			current_stock = EXCLUDED.current_stock,
			monthly_required_quantity = EXCLUDED.monthly_required_quantity,
			ok_count = EXCLUDED.ok_count,
			scrap_count = EXCLUDED.scrap_count,
			total_count = EXCLUDED.total_count,
			nff_count = EXCLUDED.nff_count,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.PartCode, c.Name, c.CurrentStock, c.MonthlyRequiredQuantity,
		c.OKCount, c.ScrapCount, c.TotalCount, c.NFFCount, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("upsert component: %w", err)
	}
	return nil
}

// List lista componentes por part_code con paginación.
func (r *ComponentRepo) List(limit, offset int) ([]*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components ORDER BY part_code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()
	var list []*entity.Component
	for rows.Next() {
		var c entity.Component
		if err := rows.Scan(&c.ID, &c.PartCode, &c.Name, &c.CurrentStock, &c.MonthlyRequiredQuantity,
			&c.OKCount, &c.ScrapCount, &c.TotalCount, &c.NFFCount, &c.ArchivedAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// DeductStock decremento condicional atómico: solo aplica si el stock alcanza.
// Cero filas afectadas significa stock insuficiente (o componente inexistente);
// con la fila ya bloqueada por FOR UPDATE no debería ocurrir, pero el guard
// condicional es lo que garantiza que current_stock jamás quede negativo.
func (r *ComponentRepo) DeductStock(componentID string, quantity int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE components
		 SET current_stock = current_stock - $2, updated_at = now()
		 WHERE id = $1 AND current_stock >= $2`,
		componentID, quantity,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("deduct stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Archive marca archived_at (baja lógica). No toca stock ni historiales.
func (r *ComponentRepo) Archive(id string, at time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE components SET archived_at = $2, updated_at = now() WHERE id = $1 AND archived_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("archive component: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ComponentRepo) scanOne(row pgx.Row, op string) (*entity.Component, error) {
	var c entity.Component
	err := row.Scan(&c.ID, &c.PartCode, &c.Name, &c.CurrentStock, &c.MonthlyRequiredQuantity,
		&c.OKCount, &c.ScrapCount, &c.TotalCount, &c.NFFCount, &c.ArchivedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
