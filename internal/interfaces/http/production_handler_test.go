package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pcb-production-api/internal/application/dto"
	"github.com/jhoicas/pcb-production-api/internal/application/production"
	"github.com/jhoicas/pcb-production-api/internal/domain"
	"github.com/jhoicas/pcb-production-api/internal/domain/entity"
	"github.com/jhoicas/pcb-production-api/internal/domain/repository"
	apphttp "github.com/jhoicas/pcb-production-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs mínimos: el TxRunner controla el resultado de la "transacción" y los
// repos atados solo cubren el camino de una PCB sin BOM (éxito trivial).
// ──────────────────────────────────────────────────────────────────────────────

// stubTxRunner devuelve err directamente si está seteado; si no, ejecuta fn con
// repos de una PCB existente sin filas de BOM.
type stubTxRunner struct {
	err error
	pcb *entity.PCB
}

func (r *stubTxRunner) Run(_ context.Context, fn func(
	repository.PCBRepository,
	repository.BOMRepository,
	repository.ComponentRepository,
	repository.ConsumptionRepository,
	repository.ProductionRepository,
) error) error {
	if r.err != nil {
		return r.err
	}
	return fn(&stubPCBRepo{pcb: r.pcb}, &stubBOMRepo{}, &stubComponentRepo{}, &stubConsumptionRepo{}, &stubProductionRepo{})
}

type stubPCBRepo struct{ pcb *entity.PCB }

func (r *stubPCBRepo) GetByID(_ string) (*entity.PCB, error)       { return r.pcb, nil }
func (r *stubPCBRepo) GetByPartCode(_ string) (*entity.PCB, error) { return r.pcb, nil }
func (r *stubPCBRepo) Upsert(_ *entity.PCB) error                  { return nil }
func (r *stubPCBRepo) List(_, _ int) ([]*entity.PCB, error)        { return nil, nil }

type stubBOMRepo struct{}

func (r *stubBOMRepo) Upsert(_ *entity.BOMEntry) error                  { return nil }
func (r *stubBOMRepo) ListByPCB(_ string) ([]*entity.BOMEntry, error)   { return nil, nil }
func (r *stubBOMRepo) ListRequirementsForUpdate(_ string) ([]*entity.BOMRequirement, error) {
	return nil, nil
}

type stubComponentRepo struct{}

func (r *stubComponentRepo) GetByID(_ string) (*entity.Component, error)       { return nil, nil }
func (r *stubComponentRepo) GetByPartCode(_ string) (*entity.Component, error) { return nil, nil }
func (r *stubComponentRepo) Upsert(_ *entity.Component) error                  { return nil }
func (r *stubComponentRepo) List(_, _ int) ([]*entity.Component, error)        { return nil, nil }
func (r *stubComponentRepo) DeductStock(_ string, _ int64) error               { return nil }
func (r *stubComponentRepo) Archive(_ string, _ time.Time) error               { return nil }

type stubConsumptionRepo struct{}

func (r *stubConsumptionRepo) Create(_ *entity.ConsumptionRecord) error { return nil }
func (r *stubConsumptionRepo) ListByComponent(_ string, _, _ *time.Time, _, _ int) ([]*entity.ConsumptionRecord, error) {
	return nil, nil
}
func (r *stubConsumptionRepo) ListByPCB(_ string, _, _ *time.Time, _, _ int) ([]*entity.ConsumptionRecord, error) {
	return nil, nil
}
func (r *stubConsumptionRepo) ListByTransaction(_ string) ([]*entity.ConsumptionRecord, error) {
	return nil, nil
}

type stubProductionRepo struct{}

func (r *stubProductionRepo) Create(_ *entity.ProductionRecord) error { return nil }
func (r *stubProductionRepo) List(_, _ *time.Time, _, _ int) ([]*entity.ProductionRecord, error) {
	return nil, nil
}
func (r *stubProductionRepo) ListByPCB(_ string, _, _ *time.Time, _, _ int) ([]*entity.ProductionRecord, error) {
	return nil, nil
}

func buildProduceApp(runner production.TxRunner) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewProductionHandler(production.NewProduceUseCase(runner), nil)
	app.Post("/api/production", handler.Produce)
	return app
}

func postProduce(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/production", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores de dominio a códigos HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestProduceHandler_Exito_201(t *testing.T) {
	app := buildProduceApp(&stubTxRunner{pcb: &entity.PCB{ID: "p1", PartCode: "PCB-BLANK"}})
	resp := postProduce(t, app, dto.ProduceRequest{PCBPartCode: "PCB-BLANK", Quantity: 2})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.ProduceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.TransactionID)
	assert.Equal(t, "PCB-BLANK", body.PCBPartCode)
	assert.NotNil(t, body.Consumption, "consumption serializa como [], nunca null")
}

func TestProduceHandler_CantidadInvalida_400(t *testing.T) {
	app := buildProduceApp(&stubTxRunner{})
	resp := postProduce(t, app, dto.ProduceRequest{PCBPartCode: "PCB-X", Quantity: 0})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_INPUT", body.Kind)
}

func TestProduceHandler_PCBDesconocida_404(t *testing.T) {
	app := buildProduceApp(&stubTxRunner{err: domain.ErrUnknownPCB})
	resp := postProduce(t, app, dto.ProduceRequest{PCBPartCode: "PCB-NO", Quantity: 1})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNKNOWN_PCB", body.Kind)
}

func TestProduceHandler_StockInsuficiente_409ConDetalle(t *testing.T) {
	app := buildProduceApp(&stubTxRunner{err: &domain.InsufficientStockError{
		ComponentID: "c1",
		PartCode:    "RES-0603-10K",
		Required:    110,
		Available:   100,
	}})
	resp := postProduce(t, app, dto.ProduceRequest{PCBPartCode: "PCB-MAIN-V2", Quantity: 11})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body dto.InsufficientStockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Kind)
	assert.Equal(t, "RES-0603-10K", body.Component.PartCode,
		"la respuesta identifica el componente que falta")
	assert.Equal(t, int64(110), body.Component.Required)
	assert.Equal(t, int64(100), body.Component.Available)
}

func TestProduceHandler_FallaDeInfraestructura_500(t *testing.T) {
	app := buildProduceApp(&stubTxRunner{err: errors.New("dial tcp 10.0.0.5:5432: connection refused")})
	resp := postProduce(t, app, dto.ProduceRequest{PCBPartCode: "PCB-MAIN-V2", Quantity: 1})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "STORAGE_FAILURE", body.Kind)

	// El detalle del driver (hosts, puertos, mensajes de conexión) no sale al cliente
	assert.NotContains(t, body.Detail, "connection refused")
	assert.NotContains(t, body.Detail, "10.0.0.5")
	assert.Equal(t, "la transacción fue revertida; reintente", body.Detail)
}

func TestProduceHandler_BodyMalformado_400(t *testing.T) {
	app := buildProduceApp(&stubTxRunner{})
	req := httptest.NewRequest(http.MethodPost, "/api/production", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
