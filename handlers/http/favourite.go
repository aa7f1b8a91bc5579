package httpHandler

import (
	"net/http"

	"rental-server/usecases"
	"rental-server/validation"

	"github.com/gin-gonic/gin"
)

type favouriteRequest struct {
	GuestID *int `json:"guest_id" binding:"required"`
}

type FavouriteHandler struct {
	useCase *usecases.FavouriteUseCase
}

func NewFavouriteHandler(useCase *usecases.FavouriteUseCase) *FavouriteHandler {
	return &FavouriteHandler{
		useCase: useCase,
	}
}

// AddFavourite handles POST /api/properties/:id/favourite
func (h *FavouriteHandler) AddFavourite(c *gin.Context) {
	propertyID, err := validation.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	var req favouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || *req.GuestID <= 0 {
		badRequest(c)
		return
	}

	favourite, err := h.useCase.AddFavourite(c.Request.Context(), propertyID, uint(*req.GuestID))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":          "Property favourited successfully.",
		"favourite_id": favourite.FavouriteID,
	})
}

// RemoveFavourite handles DELETE /api/properties/:id/users/:user_id/favourite
func (h *FavouriteHandler) RemoveFavourite(c *gin.Context) {
	propertyID, err := validation.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	guestID, err := validation.ParseID(c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.useCase.RemoveFavourite(c.Request.Context(), guestID, propertyID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
