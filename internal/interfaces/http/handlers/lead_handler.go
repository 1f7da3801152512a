package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/caions/lead/internal/application/usecases"
	"github.com/caions/lead/internal/domain/repositories"
	"github.com/caions/lead/internal/infrastructure/cache"
	"github.com/caions/lead/internal/utils"
	"github.com/gofiber/fiber/v2"
)

const (
	exportCacheKey = "leads_csv"
	exportCacheTTL = time.Minute
)

type LeadHandler struct {
	leadUseCase   *usecases.LeadUseCase
	exportUseCase *usecases.ExportUseCase
	exportCache   *cache.Cache
}

func NewLeadHandler(leadUseCase *usecases.LeadUseCase, exportUseCase *usecases.ExportUseCase, exportCache *cache.Cache) *LeadHandler {
	return &LeadHandler{
		leadUseCase:   leadUseCase,
		exportUseCase: exportUseCase,
		exportCache:   exportCache,
	}
}

// CreateLead recebe a submissão pública do formulário.
func (h *LeadHandler) CreateLead(c *fiber.Ctx) error {
	var input usecases.CreateLeadInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Corpo da requisição inválido",
		})
	}

	lead, err := h.leadUseCase.CreateLead(c.Context(), input)
	if err != nil {
		return h.handleError(c, err)
	}

	h.exportCache.Invalidate(exportCacheKey)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Lead criado com sucesso",
		"data":    lead,
	})
}

// GetLeads lista leads com filtros opcionais e paginação. Parâmetros de
// página/limite inválidos degradam para os padrões em vez de falhar.
func (h *LeadHandler) GetLeads(c *fiber.Ctx) error {
	filter := repositories.LeadFilter{
		Nome:        c.Query("nome"),
		Email:       c.Query("email"),
		Cargo:       c.Query("cargo"),
		UtmSource:   c.Query("utm_source"),
		UtmMedium:   c.Query("utm_medium"),
		UtmCampaign: c.Query("utm_campaign"),
	}

	if page, err := strconv.Atoi(c.Query("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit", "10")); err == nil {
		filter.Limit = limit
	}
	filter.Normalize()

	// O par data_inicio/data_fim é atômico: um sem o outro é ignorado
	if inicio := c.Query("data_inicio"); inicio != "" {
		if parsed, err := utils.ParseDate(inicio); err == nil {
			filter.DataInicio = parsed
		}
	}
	if fim := c.Query("data_fim"); fim != "" {
		if parsed, err := utils.ParseDate(fim); err == nil {
			filter.DataFim = utils.EndOfDay(parsed)
		}
	}

	leads, total, err := h.leadUseCase.GetLeads(c.Context(), filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Leads encontrados",
		"leads":   leads,
		"total":   total,
		"page":    filter.Page,
		"limit":   filter.Limit,
	})
}

func (h *LeadHandler) GetLead(c *fiber.Ctx) error {
	lead, err := h.leadUseCase.GetLead(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Lead encontrado",
		"data":    lead,
	})
}

// UpdateLead edita somente os campos mutáveis de um lead existente.
func (h *LeadHandler) UpdateLead(c *fiber.Ctx) error {
	var input usecases.UpdateLeadInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Corpo da requisição inválido",
		})
	}

	lead, err := h.leadUseCase.UpdateLead(c.Context(), c.Params("id"), input)
	if err != nil {
		return h.handleError(c, err)
	}

	h.exportCache.Invalidate(exportCacheKey)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Lead atualizado com sucesso",
		"data":    lead,
	})
}

func (h *LeadHandler) DeleteLead(c *fiber.Ctx) error {
	if err := h.leadUseCase.DeleteLead(c.Context(), c.Params("id")); err != nil {
		return h.handleError(c, err)
	}

	h.exportCache.Invalidate(exportCacheKey)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Lead removido com sucesso",
	})
}

// ExportCSV devolve a base inteira como arquivo CSV. Exportações repetidas
// dentro da janela do cache reutilizam o blob montado.
func (h *LeadHandler) ExportCSV(c *fiber.Ctx) error {
	csv, found := h.exportCache.Get(exportCacheKey)
	if !found {
		var err error
		csv, err = h.exportUseCase.ExportCSV(c.Context())
		if err != nil {
			return h.handleError(c, err)
		}
		h.exportCache.Set(exportCacheKey, csv, exportCacheTTL)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=leads.csv")
	return c.SendString(csv)
}

// handleError traduz os erros tipados das camadas internas para o envelope
// HTTP: 400 com mapa campo→mensagem, 404, 409 ou 500 genérico.
func (h *LeadHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrs usecases.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Dados inválidos",
			"errors":  validationErrs.ByField(),
		})
	}

	if errors.Is(err, repositories.ErrLeadNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("Lead com ID %s não encontrado", c.Params("id")),
		})
	}

	if errors.Is(err, repositories.ErrDuplicateEmail) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Email já está sendo usado por outro lead",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Erro interno do servidor",
	})
}
