package repository

import (
	"time"

	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
)

// ConsumptionRepository define el puerto del libro de consumo. Solo inserts y
// lecturas: las filas son hechos inmutables de auditoría.
type ConsumptionRepository interface {
	Create(record *entity.ConsumptionRecord) error
	ListByComponent(componentID string, from, to *time.Time, limit, offset int) ([]*entity.ConsumptionRecord, error)
	ListByPCB(pcbID string, from, to *time.Time, limit, offset int) ([]*entity.ConsumptionRecord, error)
	// ListByTransaction devuelve las filas de una corrida (reconstrucción de auditoría).
	ListByTransaction(transactionID string) ([]*entity.ConsumptionRecord, error)
}
