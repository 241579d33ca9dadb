package catalog

import (
	"time"

	"github.com/jhoicas/pcb-production-api/internal/application/dto"
	"github.com/jhoicas/pcb-production-api/internal/domain"
	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
)

// CatalogUseCase mantiene el catálogo de componentes, el maestro de PCBs y la BOM.
// Es la superficie que invoca el colaborador de importación masiva: todas las
// escrituras son upserts por código de parte, idempotentes fila a fila.
type CatalogUseCase struct {
	componentRepo repository.ComponentRepository
	pcbRepo       repository.PCBRepository
	bomRepo       repository.BOMRepository
}

// NewCatalogUseCase construye el caso de uso de catálogo.
func NewCatalogUseCase(
	componentRepo repository.ComponentRepository,
	pcbRepo repository.PCBRepository,
	bomRepo repository.BOMRepository,
) *CatalogUseCase {
	return &CatalogUseCase{componentRepo: componentRepo, pcbRepo: pcbRepo, bomRepo: bomRepo}
}

// UpsertComponent inserta o actualiza un componente por part_code.
// El stock se fija al valor importado: la importación es la fuente de verdad del
// conteo físico; las corridas de producción posteriores lo decrementan.
func (uc *CatalogUseCase) UpsertComponent(in dto.UpsertComponentRequest) error {
	if in.PartCode == "" || in.ComponentName == "" {
		return domain.ErrInvalidInput
	}
	if in.CurrentStock < 0 || in.MonthlyRequiredQuantity < 0 {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.componentRepo.Upsert(&entity.Component{
		PartCode:                in.PartCode,
		Name:                    in.ComponentName,
		CurrentStock:            in.CurrentStock,
		MonthlyRequiredQuantity: in.MonthlyRequiredQuantity,
		OKCount:                 in.OKCount,
		ScrapCount:              in.ScrapCount,
		TotalCount:              in.TotalCount,
		NFFCount:                in.NFFCount,
		CreatedAt:               now,
		UpdatedAt:               now,
	})
}

// UpsertPCB inserta o actualiza una tarjeta del maestro por part_code.
func (uc *CatalogUseCase) UpsertPCB(in dto.UpsertPCBRequest) error {
	if in.PartCode == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.pcbRepo.Upsert(&entity.PCB{
		PartCode:  in.PartCode,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// UpsertBOMEntry agrega una fila de BOM resolviendo los códigos de parte.
// quantity_required debe ser > 0; un par (PCB, componente) ya existente es no-op,
// nunca aditivo. Componentes archivados no admiten filas nuevas.
func (uc *CatalogUseCase) UpsertBOMEntry(in dto.UpsertBOMEntryRequest) error {
	if in.PCBPartCode == "" || in.ComponentPartCode == "" || in.QuantityRequired <= 0 {
		return domain.ErrInvalidInput
	}
	pcb, err := uc.pcbRepo.GetByPartCode(in.PCBPartCode)
	if err != nil {
		return err
	}
	if pcb == nil {
		return domain.ErrUnknownPCB
	}
	component, err := uc.componentRepo.GetByPartCode(in.ComponentPartCode)
	if err != nil {
		return err
	}
	if component == nil {
		return domain.ErrNotFound
	}
	if component.Archived() {
		return domain.ErrComponentArchived
	}
	return uc.bomRepo.Upsert(&entity.BOMEntry{
		PCBID:            pcb.ID,
		ComponentID:      component.ID,
		QuantityRequired: in.QuantityRequired,
		CreatedAt:        time.Now(),
	})
}

// ArchiveComponent baja lógica de un componente. Los historiales de consumo que lo
// referencian se conservan; el análisis de faltantes deja de incluirlo.
func (uc *CatalogUseCase) ArchiveComponent(id string) error {
	component, err := uc.componentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if component == nil {
		return domain.ErrNotFound
	}
	if component.Archived() {
		return nil // idempotente
	}
	return uc.componentRepo.Archive(id, time.Now())
}

// ListComponents lista el catálogo con paginación.
func (uc *CatalogUseCase) ListComponents(page dto.PageRequest) ([]dto.ComponentDTO, error) {
	page.DefaultPage()
	components, err := uc.componentRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComponentDTO, 0, len(components))
	for _, c := range components {
		out = append(out, dto.ComponentDTO{
			ID:                      c.ID,
			PartCode:                c.PartCode,
			Name:                    c.Name,
			CurrentStock:            c.CurrentStock,
			MonthlyRequiredQuantity: c.MonthlyRequiredQuantity,
			OKCount:                 c.OKCount,
			ScrapCount:              c.ScrapCount,
			TotalCount:              c.TotalCount,
			NFFCount:                c.NFFCount,
			ArchivedAt:              c.ArchivedAt,
		})
	}
	return out, nil
}

// ListPCBs lista el maestro de PCBs con paginación.
func (uc *CatalogUseCase) ListPCBs(page dto.PageRequest) ([]dto.PCBDTO, error) {
	page.DefaultPage()
	pcbs, err := uc.pcbRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PCBDTO, 0, len(pcbs))
	for _, p := range pcbs {
		out = append(out, dto.PCBDTO{ID: p.ID, PartCode: p.PartCode, Status: p.Status})
	}
	return out, nil
}

// ListBOM lista la BOM de una PCB identificada por part_code.
func (uc *CatalogUseCase) ListBOM(pcbPartCode string) ([]dto.BOMEntryDTO, error) {
	pcb, err := uc.pcbRepo.GetByPartCode(pcbPartCode)
	if err != nil {
		return nil, err
	}
	if pcb == nil {
		return nil, domain.ErrUnknownPCB
	}
	entries, err := uc.bomRepo.ListByPCB(pcb.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BOMEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.BOMEntryDTO{
			ID:               e.ID,
			PCBID:            e.PCBID,
			ComponentID:      e.ComponentID,
			QuantityRequired: e.QuantityRequired,
		})
	}
	return out, nil
}
