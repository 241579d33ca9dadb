package production

import (
	"context"

	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de producción: o se aplican
// todas las deducciones, el libro de consumo y el registro de producción, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pcbRepo repository.PCBRepository,
		bomRepo repository.BOMRepository,
		componentRepo repository.ComponentRepository,
		consumptionRepo repository.ConsumptionRepository,
		productionRepo repository.ProductionRepository,
	) error) error
}
