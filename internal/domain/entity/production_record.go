package entity

import "time"

// ProductionRecord es el hecho inmutable de una corrida de producción que llegó a
// commit. Una fila por transacción; si la transacción aborta, la fila no existe.
type ProductionRecord struct {
	ID               string
	TransactionID    string
	PCBID            string
	QuantityProduced int64
	CreatedAt        time.Time
}
