package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pcb-production-api/internal/application/catalog"
	"github.com/jhoicas/pcb-production-api/internal/application/dto"
	"github.com/jhoicas/pcb-production-api/internal/domain"
)

// CatalogHandler maneja el catálogo de componentes, el maestro de PCBs y la BOM.
// Es la superficie HTTP que invoca el colaborador de importación masiva.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler de catálogo.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// UpsertComponent godoc
// @Summary      Upsert de componente por part_code
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertComponentRequest  true  "part_code, component_name, current_stock, monthly_required_quantity"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/components [put]
func (h *CatalogHandler) UpsertComponent(c *fiber.Ctx) error {
	var in dto.UpsertComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Kind: "INVALID_BODY", Detail: "cuerpo inválido"})
	}
	if err := h.uc.UpsertComponent(in); err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(fiber.Map{"message": "componente actualizado"})
}

// UpsertPCB godoc
// @Summary      Upsert de PCB por part_code
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertPCBRequest  true  "part_code, status"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/pcbs [put]
func (h *CatalogHandler) UpsertPCB(c *fiber.Ctx) error {
	var in dto.UpsertPCBRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Kind: "INVALID_BODY", Detail: "cuerpo inválido"})
	}
	if err := h.uc.UpsertPCB(in); err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(fiber.Map{"message": "pcb actualizada"})
}

// UpsertBOMEntry godoc
// @Summary      Agregar fila de BOM (duplicados son no-op)
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertBOMEntryRequest  true  "pcb_part_code, component_part_code, quantity_required > 0"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalog/bom [put]
func (h *CatalogHandler) UpsertBOMEntry(c *fiber.Ctx) error {
	var in dto.UpsertBOMEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Kind: "INVALID_BODY", Detail: "cuerpo inválido"})
	}
	if err := h.uc.UpsertBOMEntry(in); err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(fiber.Map{"message": "fila de BOM registrada"})
}

// ArchiveComponent godoc
// @Summary      Baja lógica de componente
// @Description  Marca archived_at; los historiales se conservan y el análisis lo excluye.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del componente"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/components/{id}/archive [post]
func (h *CatalogHandler) ArchiveComponent(c *fiber.Ctx) error {
	if err := h.uc.ArchiveComponent(c.Params("id")); err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(fiber.Map{"message": "componente archivado"})
}

// ListComponents godoc
// @Summary      Listar componentes
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ComponentDTO
// @Router       /api/catalog/components [get]
func (h *CatalogHandler) ListComponents(c *fiber.Ctx) error {
	list, err := h.uc.ListComponents(parsePage(c))
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "components": list})
}

// ListPCBs godoc
// @Summary      Listar PCBs
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PCBDTO
// @Router       /api/catalog/pcbs [get]
func (h *CatalogHandler) ListPCBs(c *fiber.Ctx) error {
	list, err := h.uc.ListPCBs(parsePage(c))
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "pcbs": list})
}

// ListBOM godoc
// @Summary      Listar BOM de una PCB
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        pcb_part_code  query  string  true  "Código de parte de la PCB"
// @Success      200  {array}   dto.BOMEntryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/bom [get]
func (h *CatalogHandler) ListBOM(c *fiber.Ctx) error {
	partCode := c.Query("pcb_part_code")
	if partCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Kind: "VALIDATION", Detail: "pcb_part_code requerido"})
	}
	list, err := h.uc.ListBOM(partCode)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "bom": list})
}

func mapCatalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Kind: "INVALID_INPUT", Detail: "datos inválidos"})
	case errors.Is(err, domain.ErrUnknownPCB):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Kind: "UNKNOWN_PCB", Detail: "la PCB no existe"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Kind: "NOT_FOUND", Detail: "recurso no encontrado"})
	case errors.Is(err, domain.ErrComponentArchived):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Kind: "COMPONENT_ARCHIVED", Detail: "el componente está archivado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Kind: "STORAGE_FAILURE", Detail: "la operación no pudo aplicarse"})
	}
}
