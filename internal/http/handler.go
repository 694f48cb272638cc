package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bpdigital/contract-repository/internal/http/middleware"
	"github.com/bpdigital/contract-repository/internal/integration"
	"github.com/bpdigital/contract-repository/internal/lifecycle"
	"github.com/bpdigital/contract-repository/internal/model"
	"github.com/bpdigital/contract-repository/internal/service"
)

// ExpirationReportExporter renders an expiration report as a downloadable
// workbook.
type ExpirationReportExporter interface {
	Generate(report model.ExpirationReport) ([]byte, error)
}

// ContractDocumentGenerator renders a single contract as a printable
// document.
type ContractDocumentGenerator interface {
	Generate(contract model.Contract, now time.Time) ([]byte, error)
}

type Handler struct {
	contracts *service.ContractService
	types     *service.ContractTypeService
	banking   integration.CoreBanking
	excel     ExpirationReportExporter
	pdf       ContractDocumentGenerator
	log       zerolog.Logger
}

func NewHandler(
	contracts *service.ContractService,
	types *service.ContractTypeService,
	banking integration.CoreBanking,
	excel ExpirationReportExporter,
	pdf ContractDocumentGenerator,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		contracts: contracts,
		types:     types,
		banking:   banking,
		excel:     excel,
		pdf:       pdf,
		log:       log,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrContractNumberExists),
		errors.Is(err, service.ErrConcurrentModification),
		errors.Is(err, lifecycle.ErrInvalidStatusTransition),
		errors.Is(err, lifecycle.ErrNotActivatable),
		errors.Is(err, lifecycle.ErrNotEditable),
		errors.Is(err, lifecycle.ErrNotDeletable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrCustomerInvalid),
		errors.Is(err, lifecycle.ErrInvalidContractDates),
		errors.Is(err, lifecycle.ErrInvalidContractValue),
		errors.Is(err, lifecycle.ErrMissingRequiredField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *Handler) requireManager(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return model.Principal{}, false
	}
	if !principal.CanManageContracts() {
		c.JSON(http.StatusForbidden, gin.H{"error": "contract manager role required"})
		return model.Principal{}, false
	}
	return principal, true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
