package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/carewave-api/internal/models"
)

type EmailInvoiceRequest struct {
	To string `json:"to"`
}

// @Summary      List billing records
// @Tags         Billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.BillingWithPatient
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/billing [get]
func (h *Handler) GetBillingRecords(c *gin.Context) {
	records, err := h.Billing.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// @Summary      Get a billing record
// @Tags         Billing
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Billing record ID"
// @Success      200  {object}  models.BillingWithPatient
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/billing/{id} [get]
func (h *Handler) GetBillingRecord(c *gin.Context) {
	record, err := h.Billing.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ExportBilling downloads billing records as CSV, optionally for one patient
// (?patientId=).
//
// @Summary      Export billing records as CSV
// @Tags         Billing
// @Produce      text/csv
// @Security     BearerAuth
// @Param        patientId  query  string  false  "Only this patient's records"
// @Success      200  {file}    file
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/billing/export [get]
func (h *Handler) ExportBilling(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.Billing.ExportCSV(c.Request.Context(), &buf, c.Query("patientId")); err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="billing-records.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GetInvoice renders one invoice as PDF (default) or print-ready HTML.
//
// @Summary      Render an invoice
// @Tags         Billing
// @Produce      application/pdf,text/html
// @Security     BearerAuth
// @Param        id  path  string  true  "Billing record ID"
// @Param        format  query  string  false  "pdf (default) or html"
// @Success      200  {file}    file
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/billing/{id}/invoice [get]
func (h *Handler) GetInvoice(c *gin.Context) {
	ctx := c.Request.Context()
	switch strings.ToLower(c.DefaultQuery("format", "pdf")) {
	case "pdf":
		pdf, record, err := h.Billing.InvoicePDF(ctx, c.Param("id"))
		if err != nil {
			h.fail(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="invoice-%s.pdf"`, record.InvoiceNumber))
		c.Data(http.StatusOK, "application/pdf", pdf)
	case "html":
		page, _, err := h.Billing.InvoiceHTML(ctx, c.Param("id"))
		if err != nil {
			h.fail(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	default:
		respondError(c, http.StatusBadRequest, "format must be pdf or html")
	}
}

// EmailInvoice sends the PDF invoice to the address in the body, falling back
// to the patient's contact info.
//
// @Summary      Email an invoice
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Billing record ID"
// @Param        body  body  EmailInvoiceRequest  false  "Request body"
// @Success      200  {object}  object
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /api/billing/{id}/email [post]
func (h *Handler) EmailInvoice(c *gin.Context) {
	var req EmailInvoiceRequest
	if c.Request.ContentLength > 0 && !bind(c, &req) {
		return
	}
	to, err := h.Billing.EmailInvoice(c.Request.Context(), c.Param("id"), strings.TrimSpace(req.To))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice sent", "to": to})
}

// @Summary      Create a billing record
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  models.BillingInput  true  "Request body"
// @Success      201  {object}  models.BillingRecord
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/billing [post]
func (h *Handler) CreateBillingRecord(c *gin.Context) {
	var in models.BillingInput
	if !bind(c, &in) {
		return
	}
	record, err := h.Billing.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// @Summary      Update a billing record
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Billing record ID"
// @Param        body  body  models.BillingUpdate  true  "Request body"
// @Success      200  {object}  models.BillingRecord
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/billing/{id} [put]
func (h *Handler) UpdateBillingRecord(c *gin.Context) {
	var update models.BillingUpdate
	if !bind(c, &update) {
		return
	}
	record, err := h.Billing.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// @Summary      Delete a billing record
// @Tags         Billing
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Billing record ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/billing/{id} [delete]
func (h *Handler) DeleteBillingRecord(c *gin.Context) {
	if err := h.Billing.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
