package repository

import "github.com/jhoicas/pcb-production-api/internal/domain/entity"

// PCBRepository define el puerto de persistencia del maestro de PCBs.
type PCBRepository interface {
	GetByID(id string) (*entity.PCB, error)
	GetByPartCode(partCode string) (*entity.PCB, error)
	// Upsert inserta o actualiza por part_code (contrato del colaborador de importación).
	Upsert(pcb *entity.PCB) error
	List(limit, offset int) ([]*entity.PCB, error)
}
