package shortage

import (
	"context"

	"github.com/jhoicas/pcb-production-api/internal/application/dto"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

// AnalyzeUseCase análisis de faltantes: agrega la demanda de BOM de toda la línea
// de productos por componente y la contrasta con el stock actual. Solo lectura;
// seguro de correr concurrente con producciones en vuelo (observa el estado
// commiteado visible al momento de la consulta).
type AnalyzeUseCase struct {
	shortageRepo repository.ShortageRepository
}

// NewAnalyzeUseCase construye el caso de uso de análisis.
func NewAnalyzeUseCase(shortageRepo repository.ShortageRepository) *AnalyzeUseCase {
	return &AnalyzeUseCase{shortageRepo: shortageRepo}
}

// Analyze devuelve una fila por componente en orden estable por part_code.
// Dos llamadas sin escrituras intermedias producen el mismo resultado.
func (uc *AnalyzeUseCase) Analyze(ctx context.Context) ([]dto.ShortageReportDTO, error) {
	rows, err := uc.shortageRepo.Analyze(ctx)
	if err != nil {
		return nil, err
	}
	report := make([]dto.ShortageReportDTO, 0, len(rows))
	for _, r := range rows {
		report = append(report, dto.ShortageReportDTO{
			ComponentID:             r.ComponentID,
			PartCode:                r.PartCode,
			ComponentName:           r.ComponentName,
			CurrentStock:            r.CurrentStock,
			MonthlyRequiredQuantity: r.MonthlyRequiredQuantity,
			TotalRequired:           r.TotalRequired,
			Shortage:                r.Shortage,
			ShortagePercentage:      r.ShortagePercentage,
			StockStatus:             r.StockStatus,
		})
	}
	return report, nil
}
