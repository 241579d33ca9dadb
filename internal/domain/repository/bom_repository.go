package repository

import "github.com/jhoicas/pcb-production-api/internal/domain/entity"

// BOMRepository define el puerto de la relación muchos-a-muchos PCB × componente.
type BOMRepository interface {
	// Upsert inserta la fila de BOM; si el par (pcb, componente) ya existe es un
	// no-op (ON CONFLICT DO NOTHING), nunca aditivo.
	Upsert(entry *entity.BOMEntry) error
	ListByPCB(pcbID string) ([]*entity.BOMEntry, error)
	// ListRequirementsForUpdate lee la BOM de una PCB unida con el stock actual de
	// cada componente, bloqueando las filas de componentes (FOR UPDATE) en orden
	// determinista por part_code para evitar deadlocks entre producciones que
	// comparten componentes. Solo tiene sentido dentro de una transacción.
	ListRequirementsForUpdate(pcbID string) ([]*entity.BOMRequirement, error)
}
