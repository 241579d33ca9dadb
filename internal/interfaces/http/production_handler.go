package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pcb-production-api/internal/application/dto"
	"github.com/jhoicas/pcb-production-api/internal/application/production"
	"github.com/jhoicas/pcb-production-api/internal/domain"
)

// ProductionHandler maneja el registro de corridas de producción y los historiales.
type ProductionHandler struct {
	produce *production.ProduceUseCase
	history *production.HistoryUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(produce *production.ProduceUseCase, history *production.HistoryUseCase) *ProductionHandler {
	return &ProductionHandler{produce: produce, history: history}
}

// Produce godoc
// @Summary      Registrar corrida de producción
// @Description  Descuenta el stock de todos los componentes de la BOM (todo-o-nada),
//
//	inserta el libro de consumo y el registro de producción en una transacción.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProduceRequest  true  "pcb_part_code, quantity"
// @Success      201   {object}  dto.ProduceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Produce(c *fiber.Ctx) error {
	var in dto.ProduceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Kind: "INVALID_BODY", Detail: "cuerpo inválido"})
	}
	out, err := h.produce.Produce(c.Context(), in)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Kind: "INVALID_INPUT", Detail: "pcb_part_code y quantity > 0 son requeridos"})
		case errors.Is(err, domain.ErrUnknownPCB):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Kind: "UNKNOWN_PCB", Detail: "la PCB no existe"})
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusConflict).JSON(dto.InsufficientStockResponse{
				Kind:   "INSUFFICIENT_STOCK",
				Detail: insufficient.Error(),
				Component: dto.InsufficientStockDetail{
					ComponentID: insufficient.ComponentID,
					PartCode:    insufficient.PartCode,
					Required:    insufficient.Required,
					Available:   insufficient.Available,
				},
			})
		default:
			// ErrStorageFailure: la transacción quedó revertida, reintentable.
			// El error crudo queda para el logger del caller, no para el cliente.
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Kind: "STORAGE_FAILURE", Detail: "la transacción fue revertida; reintente"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProductions godoc
// @Summary      Historial de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Fecha inicial (RFC3339)"
// @Param        to      query  string  false  "Fecha final (RFC3339)"
// @Param        limit   query  int     false  "Límite de página"
// @Param        offset  query  int     false  "Offset de página"
// @Success      200  {array}   dto.ProductionRecordDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/production [get]
func (h *ProductionHandler) ListProductions(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Kind: "VALIDATION", Detail: "from/to deben ser RFC3339"})
	}
	page := parsePage(c)
	list, err := h.history.Productions(from, to, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Kind: "STORAGE_FAILURE", Detail: "no se pudo leer el historial"})
	}
	return c.JSON(fiber.Map{"total": len(list), "productions": list})
}

// ListConsumption godoc
// @Summary      Historial de consumo
// @Description  Filtra por component_id, pcb_id o transaction_id (exactamente uno).
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        component_id    query  string  false  "Componente"
// @Param        pcb_id          query  string  false  "PCB"
// @Param        transaction_id  query  string  false  "Corrida puntual"
// @Success      200  {array}   dto.ConsumptionRecordDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production/consumption [get]
func (h *ProductionHandler) ListConsumption(c *fiber.Ctx) error {
	componentID := c.Query("component_id")
	pcbID := c.Query("pcb_id")
	transactionID := c.Query("transaction_id")

	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Kind: "VALIDATION", Detail: "from/to deben ser RFC3339"})
	}
	page := parsePage(c)

	var (
		list []dto.ConsumptionRecordDTO
		err  error
	)
	switch {
	case transactionID != "":
		list, err = h.history.ConsumptionByTransaction(transactionID)
	case componentID != "":
		list, err = h.history.ConsumptionByComponent(componentID, from, to, page)
	case pcbID != "":
		list, err = h.history.ConsumptionByPCB(pcbID, from, to, page)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Kind: "VALIDATION", Detail: "component_id, pcb_id o transaction_id requerido"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Kind: "STORAGE_FAILURE", Detail: "no se pudo leer el historial"})
	}
	return c.JSON(fiber.Map{"total": len(list), "consumption": list})
}

func parsePage(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	page.DefaultPage()
	return page
}

func parseDateRange(c *fiber.Ctx) (from, to *time.Time, ok bool) {
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, nil, false
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, nil, false
		}
		to = &t
	}
	return from, to, true
}
