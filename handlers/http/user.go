package httpHandler

import (
	"net/http"

	"rental-server/usecases"
	"rental-server/validation"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{
		useCase: useCase,
	}
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	user, err := h.useCase.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser handles PATCH /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c)
		return
	}

	user, err := h.useCase.UpdateUser(c.Request.Context(), id, fields)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
