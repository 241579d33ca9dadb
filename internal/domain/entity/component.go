package entity

import "time"

// Component representa un componente electrónico del catálogo con su stock actual.
// CurrentStock nunca es negativo: el motor de producción solo lo decrementa con
// chequeo condicional dentro de una transacción, y la tabla tiene CHECK >= 0.
type Component struct {
	ID                      string
	PartCode                string // código de parte único (identidad externa)
	Name                    string
	CurrentStock            int64
	MonthlyRequiredQuantity int64 // umbral independiente para LOW STOCK (20%)
	OKCount                 int64
	ScrapCount              int64
	TotalCount              int64
	NFFCount                int64 // no failure found
	ArchivedAt              *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Archived indica si el componente fue dado de baja lógica (soft delete).
// Los registros históricos de consumo que lo referencian se conservan intactos.
func (c *Component) Archived() bool {
	return c.ArchivedAt != nil
}
