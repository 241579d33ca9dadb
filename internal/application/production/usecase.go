package production

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pcb-production-api/internal/application/dto"
	"github.com/jhoicas/pcb-production-api/internal/domain"
	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

// MaxQuantityPerRun tope de unidades por corrida. Mantiene
// quantity_required * quantity dentro de int64 sin desborde.
const MaxQuantityPerRun = 1_000_000

// ProduceUseCase registra una corrida de producción de forma transaccional:
// lee la BOM de la PCB con lock de filas, verifica suficiencia de todos los
// componentes (todo-o-nada), descuenta stock, inserta el libro de consumo y el
// registro de producción, y hace Commit o Rollback.
type ProduceUseCase struct {
	txRunner TxRunner
}

// NewProduceUseCase construye el caso de uso.
func NewProduceUseCase(txRunner TxRunner) *ProduceUseCase {
	return &ProduceUseCase{txRunner: txRunner}
}

// Produce ejecuta una corrida de producción para una PCB y cantidad dadas.
//
// Errores: domain.ErrInvalidInput (cantidad fuera de (0, MaxQuantityPerRun] o
// código vacío), domain.ErrUnknownPCB,
// *domain.InsufficientStockError (ningún stock se toca aunque otros componentes
// alcancen), domain.ErrStorageFailure (la transacción quedó revertida; reintentable).
func (uc *ProduceUseCase) Produce(ctx context.Context, in dto.ProduceRequest) (*dto.ProduceResponse, error) {
	if in.PCBPartCode == "" || in.Quantity <= 0 || in.Quantity > MaxQuantityPerRun {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()
	var consumption []dto.ConsumptionDTO

	err := uc.txRunner.Run(ctx, func(
		pcbRepo repository.PCBRepository,
		bomRepo repository.BOMRepository,
		componentRepo repository.ComponentRepository,
		consumptionRepo repository.ConsumptionRepository,
		productionRepo repository.ProductionRepository,
	) error {
		// La PCB se resuelve dentro de la transacción: el chequeo y la deducción
		// deben ver el mismo snapshot.
		pcb, err := pcbRepo.GetByPartCode(in.PCBPartCode)
		if err != nil {
			return err
		}
		if pcb == nil {
			return domain.ErrUnknownPCB
		}

		// BOM unida con stock actual, filas de componentes bloqueadas (FOR UPDATE)
		// en orden por part_code. Dos producciones concurrentes sobre componentes
		// compartidos se serializan aquí: la segunda ve el stock ya descontado.
		reqs, err := bomRepo.ListRequirementsForUpdate(pcb.ID)
		if err != nil {
			return err
		}

		// Primera pasada: suficiencia de todos los componentes antes de tocar nada.
		for _, req := range reqs {
			requiredTotal := req.QuantityRequired * in.Quantity
			if req.CurrentStock < requiredTotal {
				return &domain.InsufficientStockError{
					ComponentID: req.ComponentID,
					PartCode:    req.PartCode,
					Required:    requiredTotal,
					Available:   req.CurrentStock,
				}
			}
		}

		// Segunda pasada: decremento condicional + fila en el libro de consumo.
		for _, req := range reqs {
			requiredTotal := req.QuantityRequired * in.Quantity
			if err := componentRepo.DeductStock(req.ComponentID, requiredTotal); err != nil {
				return err
			}
			record := &entity.ConsumptionRecord{
				TransactionID:    txID,
				ComponentID:      req.ComponentID,
				PCBID:            pcb.ID,
				QuantityDeducted: requiredTotal,
				CreatedAt:        now,
			}
			if err := consumptionRepo.Create(record); err != nil {
				return err
			}
			consumption = append(consumption, dto.ConsumptionDTO{
				ComponentID:      req.ComponentID,
				PartCode:         req.PartCode,
				ComponentName:    req.ComponentName,
				QuantityDeducted: requiredTotal,
			})
		}

		// Una PCB sin filas de BOM produce trivialmente: solo queda el registro.
		return productionRepo.Create(&entity.ProductionRecord{
			TransactionID:    txID,
			PCBID:            pcb.ID,
			QuantityProduced: in.Quantity,
			CreatedAt:        now,
		})
	})
	if err != nil {
		return nil, classify(err)
	}

	if consumption == nil {
		consumption = []dto.ConsumptionDTO{}
	}
	return &dto.ProduceResponse{
		Message:       "producción registrada",
		TransactionID: txID,
		PCBPartCode:   in.PCBPartCode,
		Quantity:      in.Quantity,
		Consumption:   consumption,
	}, nil
}

// classify deja pasar los errores de dominio tal cual y envuelve cualquier otro
// (conexión, constraint, deadlock) como ErrStorageFailure: la transacción quedó
// revertida y el caller puede reintentar sin estado parcial.
func classify(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownPCB),
		errors.Is(err, domain.ErrInsufficientStock):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
}
