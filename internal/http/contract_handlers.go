package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bpdigital/contract-repository/internal/model"
	"github.com/bpdigital/contract-repository/internal/service"
)

type createContractRequest struct {
	ContractNumber     string  `json:"contract_number"`
	Title              string  `json:"title" binding:"required"`
	Description        string  `json:"description"`
	ContractTypeID     string  `json:"contract_type_id" binding:"required"`
	CustomerID         string  `json:"customer_id" binding:"required"`
	InternalDepartment string  `json:"internal_department" binding:"required"`
	ExternalParty      string  `json:"external_party" binding:"required"`
	StartDate          string  `json:"start_date" binding:"required"`
	EndDate            string  `json:"end_date" binding:"required"`
	RenewalDate        string  `json:"renewal_date"`
	ContractValue      *string `json:"contract_value"`
	Currency           string  `json:"currency"`
	PaymentTerms       string  `json:"payment_terms"`
	RiskLevel          string  `json:"risk_level"`
	BusinessOwner      string  `json:"business_owner"`
	PrimaryContact     string  `json:"primary_contact"`
	AutoRenewal        *bool   `json:"auto_renewal"`
	ReminderDays       *int    `json:"reminder_days"`
	InternalNotes      string  `json:"internal_notes"`
	ComplianceNotes    string  `json:"compliance_notes"`
}

type updateContractRequest struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	ContractTypeID     string  `json:"contract_type_id"`
	InternalDepartment string  `json:"internal_department"`
	ExternalParty      string  `json:"external_party"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	RenewalDate        string  `json:"renewal_date"`
	ContractValue      *string `json:"contract_value"`
	Currency           string  `json:"currency"`
	PaymentTerms       string  `json:"payment_terms"`
	RiskLevel          string  `json:"risk_level"`
	BusinessOwner      string  `json:"business_owner"`
	PrimaryContact     string  `json:"primary_contact"`
	AutoRenewal        *bool   `json:"auto_renewal"`
	ReminderDays       *int    `json:"reminder_days"`
	InternalNotes      string  `json:"internal_notes"`
	ComplianceNotes    string  `json:"compliance_notes"`
}

type statusChangeRequest struct {
	Reason string `json:"reason"`
}

type renewContractRequest struct {
	NewStartDate string `json:"new_start_date" binding:"required"`
	NewEndDate   string `json:"new_end_date" binding:"required"`
}

type extendContractRequest struct {
	NewEndDate string `json:"new_end_date" binding:"required"`
}

type updateValueRequest struct {
	ContractValue string `json:"contract_value" binding:"required"`
}

func (h *Handler) createContract(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}

	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	contract, err := h.contracts.Create(c.Request.Context(), input, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toContractResponse(contract, time.Now()))
}

func (req createContractRequest) toInput() (service.CreateContractInput, error) {
	typeID, err := uuid.Parse(req.ContractTypeID)
	if err != nil {
		return service.CreateContractInput{}, service.ErrInvalidInput
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return service.CreateContractInput{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return service.CreateContractInput{}, err
	}

	input := service.CreateContractInput{
		ContractNumber:     req.ContractNumber,
		Title:              req.Title,
		Description:        req.Description,
		ContractTypeID:     typeID,
		CustomerID:         req.CustomerID,
		InternalDepartment: req.InternalDepartment,
		ExternalParty:      req.ExternalParty,
		StartDate:          startDate,
		EndDate:            endDate,
		Currency:           req.Currency,
		PaymentTerms:       req.PaymentTerms,
		RiskLevel:          model.RiskLevel(req.RiskLevel),
		BusinessOwner:      req.BusinessOwner,
		PrimaryContact:     req.PrimaryContact,
		AutoRenewal:        req.AutoRenewal,
		ReminderDays:       req.ReminderDays,
		InternalNotes:      req.InternalNotes,
		ComplianceNotes:    req.ComplianceNotes,
	}
	if strings.TrimSpace(req.RenewalDate) != "" {
		renewalDate, err := parseDate(req.RenewalDate)
		if err != nil {
			return service.CreateContractInput{}, err
		}
		input.RenewalDate = &renewalDate
	}
	if req.ContractValue != nil {
		value, err := decimal.NewFromString(*req.ContractValue)
		if err != nil {
			return service.CreateContractInput{}, service.ErrInvalidInput
		}
		input.ContractValue = &value
	}
	return input, nil
}

func (h *Handler) updateContract(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	contract, err := h.contracts.Update(c.Request.Context(), id, input, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract, time.Now()))
}

func (req updateContractRequest) toInput() (service.UpdateContractInput, error) {
	input := service.UpdateContractInput{
		Title:              req.Title,
		Description:        req.Description,
		InternalDepartment: req.InternalDepartment,
		ExternalParty:      req.ExternalParty,
		Currency:           req.Currency,
		PaymentTerms:       req.PaymentTerms,
		RiskLevel:          model.RiskLevel(req.RiskLevel),
		BusinessOwner:      req.BusinessOwner,
		PrimaryContact:     req.PrimaryContact,
		AutoRenewal:        req.AutoRenewal,
		ReminderDays:       req.ReminderDays,
		InternalNotes:      req.InternalNotes,
		ComplianceNotes:    req.ComplianceNotes,
	}
	if strings.TrimSpace(req.ContractTypeID) != "" {
		typeID, err := uuid.Parse(req.ContractTypeID)
		if err != nil {
			return service.UpdateContractInput{}, service.ErrInvalidInput
		}
		input.ContractTypeID = &typeID
	}
	if strings.TrimSpace(req.StartDate) != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			return service.UpdateContractInput{}, err
		}
		input.StartDate = &startDate
	}
	if strings.TrimSpace(req.EndDate) != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			return service.UpdateContractInput{}, err
		}
		input.EndDate = &endDate
	}
	if strings.TrimSpace(req.RenewalDate) != "" {
		renewalDate, err := parseDate(req.RenewalDate)
		if err != nil {
			return service.UpdateContractInput{}, err
		}
		input.RenewalDate = &renewalDate
	}
	if req.ContractValue != nil {
		value, err := decimal.NewFromString(*req.ContractValue)
		if err != nil {
			return service.UpdateContractInput{}, service.ErrInvalidInput
		}
		input.ContractValue = &value
	}
	return input, nil
}

func (h *Handler) getContract(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contract, err := h.contracts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract, time.Now()))
}

func (h *Handler) getContractByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contract number is required"})
		return
	}
	contract, err := h.contracts.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract, time.Now()))
}

func (h *Handler) listContracts(c *gin.Context) {
	limit := queryInt(c, "limit", 0)
	offset := queryInt(c, "offset", 0)

	var (
		contracts []model.Contract
		err       error
	)
	ctx := c.Request.Context()
	switch {
	case strings.TrimSpace(c.Query("search")) != "":
		contracts, err = h.contracts.Search(ctx, c.Query("search"), limit, offset)
	case strings.TrimSpace(c.Query("customer_id")) != "":
		contracts, err = h.contracts.ListByCustomer(ctx, c.Query("customer_id"))
	case strings.TrimSpace(c.Query("department")) != "":
		contracts, err = h.contracts.ListByDepartment(ctx, c.Query("department"))
	case strings.TrimSpace(c.Query("t24_customer_id")) != "":
		contracts, err = h.contracts.ListByT24CustomerID(ctx, c.Query("t24_customer_id"))
	case strings.TrimSpace(c.Query("source_system")) != "":
		contracts, err = h.contracts.ListBySourceSystem(ctx, c.Query("source_system"))
	case strings.TrimSpace(c.Query("type_id")) != "":
		typeID, parseErr := uuid.Parse(c.Query("type_id"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type_id"})
			return
		}
		contracts, err = h.contracts.ListByType(ctx, typeID)
	default:
		contracts, err = h.contracts.ListActive(ctx, limit, offset)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts, time.Now()))
}

func (h *Handler) deleteContract(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contracts.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) restoreContract(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	contract, err := h.contracts.Restore(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract, time.Now()))
}

func (h *Handler) activateContract(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	contract, err := h.contracts.Activate(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract, time.Now()))
}

func (h *Handler) suspendContract(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req statusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contract, err := h.contracts.Suspend(c.Request.Context(), id, req.Reason, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract, time.Now()))
}

func (h *Handler) terminateContract(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req statusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contract, err := h.contracts.Terminate(c.Request.Context(), id, req.Reason, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract, time.Now()))
}

func (h *Handler) renewContract(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req renewContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	newStart, err := parseDate(req.NewStartDate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	newEnd, err := parseDate(req.NewEndDate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	renewed, err := h.contracts.Renew(c.Request.Context(), id, newStart, newEnd, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toContractResponse(renewed, time.Now()))
}

func (h *Handler) extendContract(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req extendContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	newEnd, err := parseDate(req.NewEndDate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	contract, err := h.contracts.Extend(c.Request.Context(), id, newEnd, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract, time.Now()))
}

func (h *Handler) updateContractValue(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	value, err := decimal.NewFromString(req.ContractValue)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract value"})
		return
	}
	contract, err := h.contracts.UpdateValue(c.Request.Context(), id, value, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract, time.Now()))
}

func (h *Handler) syncContractCustomer(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	contract, err := h.contracts.SyncCustomerData(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract, time.Now()))
}

func (h *Handler) bulkSyncCustomers(c *gin.Context) {
	principal, ok := h.requireManager(c)
	if !ok {
		return
	}
	result, err := h.contracts.BulkSyncCustomerData(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": result.Synced, "failed": result.Failed})
}

func (h *Handler) listExpiringContracts(c *gin.Context) {
	days := queryInt(c, "days", 30)
	if days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be positive"})
		return
	}
	contracts, err := h.contracts.ExpiringSoon(c.Request.Context(), days)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts, time.Now()))
}

func (h *Handler) listExpiredContracts(c *gin.Context) {
	contracts, err := h.contracts.Expired(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts, time.Now()))
}

func (h *Handler) listCurrentlyActiveContracts(c *gin.Context) {
	contracts, err := h.contracts.CurrentlyActive(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts, time.Now()))
}

func (h *Handler) listRenewalsDue(c *gin.Context) {
	contracts, err := h.contracts.RenewalsDue(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts, time.Now()))
}

func (h *Handler) listHighValueContracts(c *gin.Context) {
	threshold, err := decimal.NewFromString(c.DefaultQuery("threshold", "1000000"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid threshold"})
		return
	}
	contracts, err := h.contracts.HighValue(c.Request.Context(), threshold)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts, time.Now()))
}

func (h *Handler) listContractsByValueRange(c *gin.Context) {
	minValue, err := decimal.NewFromString(c.Query("min"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min value"})
		return
	}
	maxValue, err := decimal.NewFromString(c.Query("max"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max value"})
		return
	}
	if maxValue.LessThan(minValue) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max must not be below min"})
		return
	}
	contracts, err := h.contracts.ByValueRange(c.Request.Context(), minValue, maxValue)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts, time.Now()))
}

func (h *Handler) checkContractNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Query("number"))
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number is required"})
		return
	}
	unique, err := h.contracts.IsContractNumberUnique(c.Request.Context(), number)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"number": number, "unique": unique})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
