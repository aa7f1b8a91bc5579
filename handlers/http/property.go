package httpHandler

import (
	"net/http"

	"rental-server/query"
	"rental-server/usecases"
	"rental-server/validation"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	useCase *usecases.PropertyUseCase
}

func NewPropertyHandler(useCase *usecases.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		useCase: useCase,
	}
}

// ListProperties handles GET /api/properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	minPrice, err := validation.ParsePrice(c.Query("minprice"))
	if err != nil {
		writeError(c, err)
		return
	}
	maxPrice, err := validation.ParsePrice(c.Query("maxprice"))
	if err != nil {
		writeError(c, err)
		return
	}

	listing := query.Listing{
		Types:    c.QueryArray("property_type"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     query.ParseSortKey(c.Query("sort")),
		Order:    query.ParseDirection(c.Query("order")),
	}

	properties, err := h.useCase.ListProperties(c.Request.Context(), listing)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// GetProperty handles GET /api/properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	userID, err := validation.ParseOptionalID(c.Query("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	property, err := h.useCase.GetProperty(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}
