package dto

import "time"

// ProduceRequest body para POST /api/production.
type ProduceRequest struct {
	PCBPartCode string `json:"pcb_part_code"`
	Quantity    int64  `json:"quantity"`
}

// ConsumptionDTO una deducción de stock confirmada dentro de una corrida.
type ConsumptionDTO struct {
	ComponentID      string `json:"component_id"`
	PartCode         string `json:"part_code"`
	ComponentName    string `json:"component_name"`
	QuantityDeducted int64  `json:"quantity_deducted"`
}

// ProduceResponse payload de éxito de una corrida de producción.
type ProduceResponse struct {
	Message       string           `json:"message"`
	TransactionID string           `json:"transaction_id"`
	PCBPartCode   string           `json:"pcb_part_code"`
	Quantity      int64            `json:"quantity"`
	Consumption   []ConsumptionDTO `json:"consumption"`
}

// InsufficientStockDetail detalle estructurado del error INSUFFICIENT_STOCK.
type InsufficientStockDetail struct {
	ComponentID string `json:"component_id"`
	PartCode    string `json:"part_code"`
	Required    int64  `json:"required"`
	Available   int64  `json:"available"`
}

// InsufficientStockResponse error estructurado de stock insuficiente: además del
// kind/detail genérico, identifica el componente ofensor y requerido vs disponible.
type InsufficientStockResponse struct {
	Kind      string                  `json:"kind"`
	Detail    string                  `json:"detail"`
	Component InsufficientStockDetail `json:"component"`
}

// ConsumptionRecordDTO fila del historial de consumo.
type ConsumptionRecordDTO struct {
	ID               string    `json:"id"`
	TransactionID    string    `json:"transaction_id"`
	ComponentID      string    `json:"component_id"`
	PCBID            string    `json:"pcb_id"`
	QuantityDeducted int64     `json:"quantity_deducted"`
	CreatedAt        time.Time `json:"created_at"`
}

// ProductionRecordDTO fila del historial de producción.
type ProductionRecordDTO struct {
	ID               string    `json:"id"`
	TransactionID    string    `json:"transaction_id"`
	PCBID            string    `json:"pcb_id"`
	QuantityProduced int64     `json:"quantity_produced"`
	CreatedAt        time.Time `json:"created_at"`
}
