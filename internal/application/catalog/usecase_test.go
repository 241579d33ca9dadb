package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pcb-production-api/internal/application/catalog"
	"github.com/jhoicas/pcb-production-api/internal/application/dto"
	"github.com/jhoicas/pcb-production-api/internal/domain"
	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (upsert por part_code, como los repos reales)
// ──────────────────────────────────────────────────────────────────────────────

type memComponentRepo struct {
	byCode map[string]*entity.Component
}

func (r *memComponentRepo) GetByID(id string) (*entity.Component, error) {
	for _, c := range r.byCode {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memComponentRepo) GetByPartCode(code string) (*entity.Component, error) {
	return r.byCode[code], nil
}

func (r *memComponentRepo) Upsert(c *entity.Component) error {
	if existing, ok := r.byCode[c.PartCode]; ok {
		c.ID = existing.ID
	} else if c.ID == "" {
		c.ID = "id-" + c.PartCode
	}
	r.byCode[c.PartCode] = c
	return nil
}

func (r *memComponentRepo) List(_, _ int) ([]*entity.Component, error) {
	var out []*entity.Component
	for _, c := range r.byCode {
		out = append(out, c)
	}
	return out, nil
}

func (r *memComponentRepo) DeductStock(_ string, _ int64) error { return nil }

func (r *memComponentRepo) Archive(id string, at time.Time) error {
	for _, c := range r.byCode {
		if c.ID == id {
			c.ArchivedAt = &at
		}
	}
	return nil
}

type memPCBRepo struct {
	byCode map[string]*entity.PCB
}

func (r *memPCBRepo) GetByID(id string) (*entity.PCB, error) {
	for _, p := range r.byCode {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPCBRepo) GetByPartCode(code string) (*entity.PCB, error) {
	return r.byCode[code], nil
}

func (r *memPCBRepo) Upsert(p *entity.PCB) error {
	if existing, ok := r.byCode[p.PartCode]; ok {
		p.ID = existing.ID
	} else if p.ID == "" {
		p.ID = "id-" + p.PartCode
	}
	r.byCode[p.PartCode] = p
	return nil
}

func (r *memPCBRepo) List(_, _ int) ([]*entity.PCB, error) {
	var out []*entity.PCB
	for _, p := range r.byCode {
		out = append(out, p)
	}
	return out, nil
}

type memBOMRepo struct {
	entries []*entity.BOMEntry
}

func (r *memBOMRepo) Upsert(e *entity.BOMEntry) error {
	// mismo contrato que ON CONFLICT DO NOTHING: el par existente es no-op
	for _, existing := range r.entries {
		if existing.PCBID == e.PCBID && existing.ComponentID == e.ComponentID {
			return nil
		}
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *memBOMRepo) ListByPCB(pcbID string) ([]*entity.BOMEntry, error) {
	var out []*entity.BOMEntry
	for _, e := range r.entries {
		if e.PCBID == pcbID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memBOMRepo) ListRequirementsForUpdate(_ string) ([]*entity.BOMRequirement, error) {
	return nil, nil
}

func newCatalogUC() (*catalog.CatalogUseCase, *memComponentRepo, *memPCBRepo, *memBOMRepo) {
	compRepo := &memComponentRepo{byCode: make(map[string]*entity.Component)}
	pcbRepo := &memPCBRepo{byCode: make(map[string]*entity.PCB)}
	bomRepo := &memBOMRepo{}
	return catalog.NewCatalogUseCase(compRepo, pcbRepo, bomRepo), compRepo, pcbRepo, bomRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Upsert de componentes: idempotencia por part_code
// ──────────────────────────────────────────────────────────────────────────────

func TestUpsertComponent_InsertaYActualiza(t *testing.T) {
	uc, compRepo, _, _ := newCatalogUC()

	require.NoError(t, uc.UpsertComponent(dto.UpsertComponentRequest{
		PartCode: "RES-1K", ComponentName: "Resistencia 1K", CurrentStock: 100, MonthlyRequiredQuantity: 50,
	}))
	require.NoError(t, uc.UpsertComponent(dto.UpsertComponentRequest{
		PartCode: "RES-1K", ComponentName: "Resistencia 1K 1%", CurrentStock: 250, MonthlyRequiredQuantity: 50,
	}))

	c := compRepo.byCode["RES-1K"]
	require.NotNil(t, c)
	assert.Equal(t, "Resistencia 1K 1%", c.Name, "la segunda importación actualiza, no duplica")
	assert.Equal(t, int64(250), c.CurrentStock, "el stock importado es la fuente de verdad del conteo")
	assert.Len(t, compRepo.byCode, 1)
}

func TestUpsertComponent_EntradaInvalida(t *testing.T) {
	uc, _, _, _ := newCatalogUC()

	cases := []dto.UpsertComponentRequest{
		{PartCode: "", ComponentName: "X"},
		{PartCode: "X", ComponentName: ""},
		{PartCode: "X", ComponentName: "X", CurrentStock: -1},
		{PartCode: "X", ComponentName: "X", MonthlyRequiredQuantity: -5},
	}
	for _, in := range cases {
		assert.ErrorIs(t, uc.UpsertComponent(in), domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BOM: duplicados no-op, cantidad > 0, componentes archivados rechazados
// ──────────────────────────────────────────────────────────────────────────────

func seedBOMFixtures(t *testing.T, uc *catalog.CatalogUseCase) {
	t.Helper()
	require.NoError(t, uc.UpsertPCB(dto.UpsertPCBRequest{PartCode: "PCB-MAIN", Status: "Active"}))
	require.NoError(t, uc.UpsertComponent(dto.UpsertComponentRequest{
		PartCode: "CAP-100NF", ComponentName: "Capacitor 100nF", CurrentStock: 500,
	}))
}

func TestUpsertBOMEntry_DuplicadoEsNoOp(t *testing.T) {
	uc, _, _, bomRepo := newCatalogUC()
	seedBOMFixtures(t, uc)

	in := dto.UpsertBOMEntryRequest{PCBPartCode: "PCB-MAIN", ComponentPartCode: "CAP-100NF", QuantityRequired: 4}
	require.NoError(t, uc.UpsertBOMEntry(in))
	require.NoError(t, uc.UpsertBOMEntry(in), "reimportar la misma fila no es error")

	require.Len(t, bomRepo.entries, 1, "el par (PCB, componente) es único, nunca aditivo")
	assert.Equal(t, int64(4), bomRepo.entries[0].QuantityRequired)
}

func TestUpsertBOMEntry_CantidadInvalida(t *testing.T) {
	uc, _, _, _ := newCatalogUC()
	seedBOMFixtures(t, uc)

	for _, qty := range []int64{0, -3} {
		err := uc.UpsertBOMEntry(dto.UpsertBOMEntryRequest{
			PCBPartCode: "PCB-MAIN", ComponentPartCode: "CAP-100NF", QuantityRequired: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity_required %d debe rechazarse", qty)
	}
}

func TestUpsertBOMEntry_PCBDesconocida(t *testing.T) {
	uc, _, _, _ := newCatalogUC()
	seedBOMFixtures(t, uc)

	err := uc.UpsertBOMEntry(dto.UpsertBOMEntryRequest{
		PCBPartCode: "PCB-NO-EXISTE", ComponentPartCode: "CAP-100NF", QuantityRequired: 1,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownPCB)
}

func TestUpsertBOMEntry_ComponenteArchivado(t *testing.T) {
	uc, compRepo, _, _ := newCatalogUC()
	seedBOMFixtures(t, uc)

	require.NoError(t, uc.ArchiveComponent(compRepo.byCode["CAP-100NF"].ID))

	err := uc.UpsertBOMEntry(dto.UpsertBOMEntryRequest{
		PCBPartCode: "PCB-MAIN", ComponentPartCode: "CAP-100NF", QuantityRequired: 2,
	})
	assert.ErrorIs(t, err, domain.ErrComponentArchived,
		"un componente archivado no admite filas nuevas de BOM")
}

// ──────────────────────────────────────────────────────────────────────────────
// Archivado: baja lógica e idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestArchiveComponent_Idempotente(t *testing.T) {
	uc, compRepo, _, _ := newCatalogUC()
	seedBOMFixtures(t, uc)
	id := compRepo.byCode["CAP-100NF"].ID

	require.NoError(t, uc.ArchiveComponent(id))
	first := compRepo.byCode["CAP-100NF"].ArchivedAt
	require.NotNil(t, first)

	require.NoError(t, uc.ArchiveComponent(id), "archivar dos veces no es error")
	assert.Equal(t, first, compRepo.byCode["CAP-100NF"].ArchivedAt,
		"la marca de archivado original se conserva")
}

func TestArchiveComponent_NoExiste(t *testing.T) {
	uc, _, _, _ := newCatalogUC()

	assert.ErrorIs(t, uc.ArchiveComponent("id-fantasma"), domain.ErrNotFound)
}
