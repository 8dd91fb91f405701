package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/suryatek/quotation-api/internal/application/dto"
	"github.com/suryatek/quotation-api/internal/application/quotation"
	"github.com/suryatek/quotation-api/pkg/logger"
)

// QuotationHandler exposes quotation save, read and PDF download.
type QuotationHandler struct {
	save *quotation.SaveQuotationUseCase
	pdf  *quotation.PDFUseCase
	log  *logger.Logger
}

// NewQuotationHandler wires the handler.
func NewQuotationHandler(save *quotation.SaveQuotationUseCase, pdf *quotation.PDFUseCase, log *logger.Logger) *QuotationHandler {
	return &QuotationHandler{save: save, pdf: pdf, log: log}
}

// Create POST /api/v1/quotations
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "invalid_input",
			Message: "invalid request body",
		})
	}
	resp, err := h.save.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update PUT /api/v1/quotations/:id
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.SaveQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "invalid_input",
			Message: "invalid request body",
		})
	}
	resp, err := h.save.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Get GET /api/v1/quotations/:id
func (h *QuotationHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	resp, err := h.save.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List GET /api/v1/quotations
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "invalid_input",
			Message: "invalid pagination",
		})
	}
	page.DefaultPage()
	list, err := h.save.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// DownloadPDF GET /api/v1/quotations/:id/pdf
//
// Streams the rendered proposal as an attachment named after the quote
// number, e.g. Q-2024-0007.pdf.
func (h *QuotationHandler) DownloadPDF(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	pdfBytes, filename, err := h.pdf.DownloadProposalPDF(c.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("quotation_id", id).Msg("proposal pdf")
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// parseID reads the :id path parameter; on a bad value it writes the 400
// response itself and reports ok=false.
func parseID(c *fiber.Ctx) (id int64, ok bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "invalid_input",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}
