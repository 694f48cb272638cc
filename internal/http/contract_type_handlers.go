package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bpdigital/contract-repository/internal/model"
	"github.com/bpdigital/contract-repository/internal/service"
)

type createContractTypeRequest struct {
	TypeCode              string `json:"type_code" binding:"required"`
	TypeName              string `json:"type_name" binding:"required"`
	Description           string `json:"description"`
	Category              string `json:"category" binding:"required"`
	DefaultDurationMonths int    `json:"default_duration_months"`
	DefaultReminderDays   int    `json:"default_reminder_days"`
	RequiresApproval      bool   `json:"requires_approval"`
	AutoRenewalAllowed    bool   `json:"auto_renewal_allowed"`
	FinancialImpact       bool   `json:"financial_impact"`
	RiskCategory          string `json:"risk_category"`
	ApprovalWorkflow      string `json:"approval_workflow"`
	RequiredDocuments     string `json:"required_documents"`
	DisplayOrder          int    `json:"display_order"`
}

type updateContractTypeRequest struct {
	TypeName              string `json:"type_name"`
	Description           string `json:"description"`
	DefaultDurationMonths *int   `json:"default_duration_months"`
	DefaultReminderDays   *int   `json:"default_reminder_days"`
	RequiresApproval      *bool  `json:"requires_approval"`
	AutoRenewalAllowed    *bool  `json:"auto_renewal_allowed"`
	FinancialImpact       *bool  `json:"financial_impact"`
	RiskCategory          string `json:"risk_category"`
	ApprovalWorkflow      string `json:"approval_workflow"`
	RequiredDocuments     string `json:"required_documents"`
	DisplayOrder          *int   `json:"display_order"`
}

func (h *Handler) createContractType(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}

	var req createContractTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractType, err := h.types.Create(c.Request.Context(), service.CreateContractTypeInput{
		TypeCode:              req.TypeCode,
		TypeName:              req.TypeName,
		Description:           req.Description,
		Category:              model.ContractCategory(req.Category),
		DefaultDurationMonths: req.DefaultDurationMonths,
		DefaultReminderDays:   req.DefaultReminderDays,
		RequiresApproval:      req.RequiresApproval,
		AutoRenewalAllowed:    req.AutoRenewalAllowed,
		FinancialImpact:       req.FinancialImpact,
		RiskCategory:          model.RiskCategory(req.RiskCategory),
		ApprovalWorkflow:      req.ApprovalWorkflow,
		RequiredDocuments:     req.RequiredDocuments,
		DisplayOrder:          req.DisplayOrder,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toContractTypeResponse(contractType))
}

func (h *Handler) updateContractType(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateContractTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractType, err := h.types.Update(c.Request.Context(), id, service.UpdateContractTypeInput{
		TypeName:              req.TypeName,
		Description:           req.Description,
		DefaultDurationMonths: req.DefaultDurationMonths,
		DefaultReminderDays:   req.DefaultReminderDays,
		RequiresApproval:      req.RequiresApproval,
		AutoRenewalAllowed:    req.AutoRenewalAllowed,
		FinancialImpact:       req.FinancialImpact,
		RiskCategory:          model.RiskCategory(req.RiskCategory),
		ApprovalWorkflow:      req.ApprovalWorkflow,
		RequiredDocuments:     req.RequiredDocuments,
		DisplayOrder:          req.DisplayOrder,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractTypeResponse(contractType))
}

func (h *Handler) getContractType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contractType, err := h.types.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractTypeResponse(contractType))
}

func (h *Handler) getContractTypeByCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type code is required"})
		return
	}
	contractType, err := h.types.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractTypeResponse(contractType))
}

func (h *Handler) listContractTypes(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		contractTypes []model.ContractType
		err           error
	)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		contractTypes, err = h.types.ListByCategory(ctx, model.ContractCategory(category))
	} else {
		contractTypes, err = h.types.ListActive(ctx)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	responses := make([]contractTypeResponse, 0, len(contractTypes))
	for i := range contractTypes {
		responses = append(responses, toContractTypeResponse(&contractTypes[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *Handler) deactivateContractType(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.types.Deactivate(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
