package dto

import "time"

// UpsertComponentRequest body para PUT /api/catalog/components.
// Es el contrato que invoca el colaborador de importación masiva (una llamada por fila).
type UpsertComponentRequest struct {
	PartCode                string `json:"part_code"`
	ComponentName           string `json:"component_name"`
	CurrentStock            int64  `json:"current_stock"`
	MonthlyRequiredQuantity int64  `json:"monthly_required_quantity"`
	OKCount                 int64  `json:"ok_count"`
	ScrapCount              int64  `json:"scrap_count"`
	TotalCount              int64  `json:"total_count"`
	NFFCount                int64  `json:"nff_count"`
}

// UpsertPCBRequest body para PUT /api/catalog/pcbs.
type UpsertPCBRequest struct {
	PartCode string `json:"part_code"`
	Status   string `json:"status"`
}

// UpsertBOMEntryRequest body para PUT /api/catalog/bom.
// Relaciona PCB y componente por sus códigos de parte; duplicados son no-op.
type UpsertBOMEntryRequest struct {
	PCBPartCode       string `json:"pcb_part_code"`
	ComponentPartCode string `json:"component_part_code"`
	QuantityRequired  int64  `json:"quantity_required"`
}

// ComponentDTO componente en respuestas de catálogo.
type ComponentDTO struct {
	ID                      string     `json:"id"`
	PartCode                string     `json:"part_code"`
	Name                    string     `json:"component_name"`
	CurrentStock            int64      `json:"current_stock"`
	MonthlyRequiredQuantity int64      `json:"monthly_required_quantity"`
	OKCount                 int64      `json:"ok_count"`
	ScrapCount              int64      `json:"scrap_count"`
	TotalCount              int64      `json:"total_count"`
	NFFCount                int64      `json:"nff_count"`
	ArchivedAt              *time.Time `json:"archived_at,omitempty"`
}

// PCBDTO tarjeta en respuestas de catálogo.
type PCBDTO struct {
	ID       string `json:"id"`
	PartCode string `json:"part_code"`
	Status   string `json:"status"`
}

// BOMEntryDTO fila de BOM en respuestas de catálogo.
type BOMEntryDTO struct {
	ID               string `json:"id"`
	PCBID            string `json:"pcb_id"`
	ComponentID      string `json:"component_id"`
	QuantityRequired int64  `json:"quantity_required"`
}
