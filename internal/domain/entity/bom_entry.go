package entity

import "time"

// BOMEntry relaciona una PCB con un componente y la cantidad requerida por unidad
// producida (lista de materiales). A lo sumo una fila por par (PCB, componente):
// la tabla tiene UNIQUE (pcb_id, component_id) y los inserts duplicados son no-op.
type BOMEntry struct {
	ID               string
	PCBID            string
	ComponentID      string
	QuantityRequired int64 // siempre > 0 (CHECK en tabla y validación en catálogo)
	CreatedAt        time.Time
}

// BOMRequirement es una fila de la BOM unida con el stock actual del componente,
// tal como la lee el motor de producción dentro de la transacción (con lock de fila).
type BOMRequirement struct {
	ComponentID      string
	PartCode         string
	ComponentName    string
	QuantityRequired int64
	CurrentStock     int64
}
