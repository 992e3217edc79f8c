package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customer")
	{
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomer)
	}
}

func (h *customerHandler) listCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(customers) == 0 {
		respondNotFound(c, "no customers found")
		return
	}
	respondData(c, http.StatusOK, dto.ToListCustomerResponse(customers))
}

func (h *customerHandler) getCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToCustomerResponse(customer))
}
