package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	root := r.Group("")

	// Delegate route registration to specific handlers, passing required services
	registerInvoiceRoutes(root, services.Invoice)
	registerPaymentRoutes(root, services.Payment)
	registerAttachmentRoutes(root, services.Attachment)
	registerCustomerRoutes(root, services.Customer)
	registerCurrencyRoutes(root, services.Currency)
	registerAccountRoutes(root, services.Account)
}
