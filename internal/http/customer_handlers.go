package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bpdigital/contract-repository/internal/integration"
)

func (h *Handler) getCustomer(c *gin.Context) {
	customerID := strings.TrimSpace(c.Param("id"))
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer id is required"})
		return
	}
	customer, err := h.banking.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, integration.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (h *Handler) searchCustomers(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	customers, err := h.banking.SearchCustomersByName(c.Request.Context(), name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	responses := make([]customerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, toCustomerResponse(&customers[i]))
	}
	c.JSON(http.StatusOK, responses)
}
