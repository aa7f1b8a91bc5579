package httpHandler

import (
	"net/http"

	"rental-server/entities"
	"rental-server/usecases"
	"rental-server/validation"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	useCase *usecases.ReviewUseCase
}

func NewReviewHandler(useCase *usecases.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		useCase: useCase,
	}
}

// ListReviews handles GET /api/properties/:id/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	reviews, err := h.useCase.ListReviews(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview handles POST /api/properties/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	var input entities.NewReview
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c)
		return
	}

	review, err := h.useCase.CreateReview(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// DeleteReview handles DELETE /api/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.useCase.DeleteReview(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
