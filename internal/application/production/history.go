package production

import (
	"time"

	"github.com/jhoicas/pcb-production-api/internal/application/dto"
	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

// HistoryUseCase lecturas del libro de consumo y de los registros de producción.
// Solo consultas: las filas son inmutables.
type HistoryUseCase struct {
	consumptionRepo repository.ConsumptionRepository
	productionRepo  repository.ProductionRepository
}

// NewHistoryUseCase construye el caso de uso de historiales.
func NewHistoryUseCase(
	consumptionRepo repository.ConsumptionRepository,
	productionRepo repository.ProductionRepository,
) *HistoryUseCase {
	return &HistoryUseCase{consumptionRepo: consumptionRepo, productionRepo: productionRepo}
}

// ConsumptionByComponent lista deducciones de un componente en un rango de fechas.
func (uc *HistoryUseCase) ConsumptionByComponent(componentID string, from, to *time.Time, page dto.PageRequest) ([]dto.ConsumptionRecordDTO, error) {
	page.DefaultPage()
	records, err := uc.consumptionRepo.ListByComponent(componentID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toConsumptionDTOs(records), nil
}

// ConsumptionByPCB lista deducciones originadas por corridas de una PCB.
func (uc *HistoryUseCase) ConsumptionByPCB(pcbID string, from, to *time.Time, page dto.PageRequest) ([]dto.ConsumptionRecordDTO, error) {
	page.DefaultPage()
	records, err := uc.consumptionRepo.ListByPCB(pcbID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toConsumptionDTOs(records), nil
}

// ConsumptionByTransaction reconstruye la auditoría de una corrida puntual.
func (uc *HistoryUseCase) ConsumptionByTransaction(transactionID string) ([]dto.ConsumptionRecordDTO, error) {
	records, err := uc.consumptionRepo.ListByTransaction(transactionID)
	if err != nil {
		return nil, err
	}
	return toConsumptionDTOs(records), nil
}

// Productions lista registros de producción en un rango de fechas.
func (uc *HistoryUseCase) Productions(from, to *time.Time, page dto.PageRequest) ([]dto.ProductionRecordDTO, error) {
	page.DefaultPage()
	records, err := uc.productionRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ProductionRecordDTO{
			ID:               r.ID,
			TransactionID:    r.TransactionID,
			PCBID:            r.PCBID,
			QuantityProduced: r.QuantityProduced,
			CreatedAt:        r.CreatedAt,
		})
	}
	return out, nil
}

func toConsumptionDTOs(records []*entity.ConsumptionRecord) []dto.ConsumptionRecordDTO {
	out := make([]dto.ConsumptionRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ConsumptionRecordDTO{
			ID:               r.ID,
			TransactionID:    r.TransactionID,
			ComponentID:      r.ComponentID,
			PCBID:            r.PCBID,
			QuantityDeducted: r.QuantityDeducted,
			CreatedAt:        r.CreatedAt,
		})
	}
	return out
}
