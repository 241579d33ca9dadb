package repository

import (
	"time"

	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
)

// ProductionRepository define el puerto de los registros de producción (append-only).
type ProductionRepository interface {
	Create(record *entity.ProductionRecord) error
	List(from, to *time.Time, limit, offset int) ([]*entity.ProductionRecord, error)
	ListByPCB(pcbID string, from, to *time.Time, limit, offset int) ([]*entity.ProductionRecord, error)
}
