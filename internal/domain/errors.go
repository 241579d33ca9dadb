package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUnknownPCB         = errors.New("PCB no encontrada")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrStorageFailure     = errors.New("fallo de almacenamiento")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrComponentArchived  = errors.New("componente archivado")
)

// InsufficientStockError detalla qué componente no alcanza para la producción
// solicitada. Envuelve ErrInsufficientStock para que errors.Is siga funcionando
// en handlers y tests.
type InsufficientStockError struct {
	ComponentID string
	PartCode    string
	Required    int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para componente %s: requerido %d, disponible %d",
		e.PartCode, e.Required, e.Available)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
