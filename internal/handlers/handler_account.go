package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
)

// accountHandler handles HTTP requests related to payment accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/account")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
	}
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(accounts) == 0 {
		respondNotFound(c, "no accounts found")
		return
	}
	respondData(c, http.StatusOK, dto.ToListAccountResponse(accounts))
}

func (h *accountHandler) getAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	account, err := h.accountService.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToAccountResponse(account))
}
