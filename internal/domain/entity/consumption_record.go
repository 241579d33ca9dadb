package entity

import "time"

// ConsumptionRecord es una fila inmutable del libro de consumo: cuánto stock de un
// componente descontó una corrida de producción. Solo inserts; nunca se actualiza
// ni borra. TransactionID correlaciona todas las filas de una misma corrida con su
// ProductionRecord para reconstruir la auditoría.
type ConsumptionRecord struct {
	ID               string
	TransactionID    string
	ComponentID      string
	PCBID            string
	QuantityDeducted int64
	CreatedAt        time.Time
}
