package repository

import (
	"time"

	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
)

// ComponentRepository define el puerto de persistencia del catálogo de componentes
// y de su stock. DeductStock es la única mutación de stock permitida: un decremento
// condicional atómico que jamás deja el stock negativo.
type ComponentRepository interface {
	GetByID(id string) (*entity.Component, error)
	GetByPartCode(partCode string) (*entity.Component, error)
	// Upsert inserta o actualiza por part_code (contrato del colaborador de importación).
	Upsert(component *entity.Component) error
	List(limit, offset int) ([]*entity.Component, error)
	// DeductStock ejecuta UPDATE ... SET current_stock = current_stock - qty
	// WHERE current_stock >= qty y verifica filas afectadas. Debe usarse dentro
	// de la transacción de producción.
	DeductStock(componentID string, quantity int64) error
	// Archive baja lógica: marca archived_at sin tocar historiales.
	Archive(id string, at time.Time) error
}
