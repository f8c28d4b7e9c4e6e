package api

import (
	"net/http"

	resdto "pricewatch/internal/handler/dto/response"
	"pricewatch/internal/handler/httperr"
	"pricewatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PriceLedgerHandler struct {
	q queries.PriceLedgerQueries
}

func NewPriceLedgerHandler(q queries.PriceLedgerQueries) *PriceLedgerHandler {
	return &PriceLedgerHandler{q: q}
}

// @Summary Product prices
// @Description Current price per supermarket and the cheapest entry
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.PriceLedgerResponse
// @Failure 400 {object} httperr.Response
// @Router /products/{id}/prices [get]
func (h *PriceLedgerHandler) Get(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	view, err := h.q.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceLedgerView(view))
}
