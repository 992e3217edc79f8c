package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currency")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:id", h.getCurrency)
	}
}

func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(currencies) == 0 {
		respondNotFound(c, "no currencies found")
		return
	}
	respondData(c, http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

func (h *currencyHandler) getCurrency(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToCurrencyResponse(currency))
}
