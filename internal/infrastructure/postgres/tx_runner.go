package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pcb-production-api/internal/application/production"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

// Ensure TxRunner implements production.TxRunner.
var _ production.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o
// Rollback. Con el FOR UPDATE de la lectura de BOM y el decremento condicional de
// stock, READ COMMITTED alcanza para que dos producciones concurrentes no pasen
// ambas el chequeo de suficiencia sobre el mismo snapshot.
func (r *TxRunner) Run(ctx context.Context, fn func(
	pcbRepo repository.PCBRepository,
	bomRepo repository.BOMRepository,
	componentRepo repository.ComponentRepository,
	consumptionRepo repository.ConsumptionRepository,
	productionRepo repository.ProductionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pcbRepo := NewPCBRepository(tx)
	bomRepo := NewBOMRepository(tx)
	componentRepo := NewComponentRepository(tx)
	consumptionRepo := NewConsumptionRepository(tx)
	productionRepo := NewProductionRepository(tx)

	if err := fn(pcbRepo, bomRepo, componentRepo, consumptionRepo, productionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
