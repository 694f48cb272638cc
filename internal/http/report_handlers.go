package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) contractStatistics(c *gin.Context) {
	stats, err := h.contracts.Statistics(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) countsByStatus(c *gin.Context) {
	counts, err := h.contracts.CountsByStatus(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *Handler) countsByDepartment(c *gin.Context) {
	counts, err := h.contracts.CountsByDepartment(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *Handler) monthlyCreationTrends(c *gin.Context) {
	months := queryInt(c, "months", 12)
	if months < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "months must be positive"})
		return
	}
	from := time.Now().AddDate(0, -months, 0)
	trends, err := h.contracts.MonthlyCreationTrends(c.Request.Context(), from)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

func (h *Handler) expirationReport(c *gin.Context) {
	days := queryInt(c, "days", 90)
	if days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be positive"})
		return
	}
	report, err := h.contracts.ExpirationReport(c.Request.Context(), days)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) exportExpirationReport(c *gin.Context) {
	days := queryInt(c, "days", 90)
	if days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be positive"})
		return
	}
	report, err := h.contracts.ExpirationReport(c.Request.Context(), days)
	if err != nil {
		h.handleError(c, err)
		return
	}

	data, err := h.excel.Generate(*report)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("expiration-report-%s.xlsx", report.GeneratedAt.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) exportContractDocument(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contract, err := h.contracts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	data, err := h.pdf.Generate(*contract, time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("contract-%s.pdf", contract.ContractNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
