package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter mounts the API. Everything under /api/v1 requires a valid
// bearer token; the health endpoint stays open for probes.
func NewRouter(h *Handler, authMiddleware gin.HandlerFunc, environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(authMiddleware)

	contracts := api.Group("/contracts")
	{
		contracts.POST("", h.createContract)
		contracts.GET("", h.listContracts)
		contracts.GET("/expiring", h.listExpiringContracts)
		contracts.GET("/expired", h.listExpiredContracts)
		contracts.GET("/currently-active", h.listCurrentlyActiveContracts)
		contracts.GET("/renewals-due", h.listRenewalsDue)
		contracts.GET("/high-value", h.listHighValueContracts)
		contracts.GET("/value-range", h.listContractsByValueRange)
		contracts.GET("/number-check", h.checkContractNumber)
		contracts.GET("/by-number/:number", h.getContractByNumber)
		contracts.POST("/sync-customers", h.bulkSyncCustomers)

		contracts.GET("/:id", h.getContract)
		contracts.PUT("/:id", h.updateContract)
		contracts.DELETE("/:id", h.deleteContract)
		contracts.POST("/:id/restore", h.restoreContract)
		contracts.POST("/:id/activate", h.activateContract)
		contracts.POST("/:id/suspend", h.suspendContract)
		contracts.POST("/:id/terminate", h.terminateContract)
		contracts.POST("/:id/renew", h.renewContract)
		contracts.POST("/:id/extend", h.extendContract)
		contracts.PUT("/:id/value", h.updateContractValue)
		contracts.POST("/:id/sync-customer", h.syncContractCustomer)
		contracts.GET("/:id/document", h.exportContractDocument)
	}

	types := api.Group("/contract-types")
	{
		types.POST("", h.createContractType)
		types.GET("", h.listContractTypes)
		types.GET("/by-code/:code", h.getContractTypeByCode)
		types.GET("/:id", h.getContractType)
		types.PUT("/:id", h.updateContractType)
		types.DELETE("/:id", h.deactivateContractType)
	}

	customers := api.Group("/customers")
	{
		customers.GET("/search", h.searchCustomers)
		customers.GET("/:id", h.getCustomer)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/statistics", h.contractStatistics)
		reports.GET("/status-counts", h.countsByStatus)
		reports.GET("/department-counts", h.countsByDepartment)
		reports.GET("/monthly-trends", h.monthlyCreationTrends)
		reports.GET("/expiration", h.expirationReport)
		reports.GET("/expiration/export", h.exportExpirationReport)
	}

	return router
}
