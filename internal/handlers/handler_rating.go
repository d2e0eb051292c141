package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

// ratingHandler handles HTTP requests related to counterparty ratings.
type ratingHandler struct {
	ratingService portssvc.RatingSvcFacade
}

func newRatingHandler(rs portssvc.RatingSvcFacade) *ratingHandler {
	return &ratingHandler{ratingService: rs}
}

// registerRatingRoutes registers routes related to ratings.
func registerRatingRoutes(rg *gin.RouterGroup, ratingService portssvc.RatingSvcFacade) {
	h := newRatingHandler(ratingService)

	ratings := rg.Group("/ratings")
	{
		ratings.POST("", h.createRating)
		ratings.GET("/:userID", h.listRatings)
	}
}

// createRating godoc
// @Summary Rate a counterparty
// @Description Appends a 1-5 score for another user to the rating ledger. Self-ratings are rejected.
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body dto.CreateRatingRequest true "Rating details"
// @Success 201 {object} dto.RatingResponse
// @Failure 400 {object} ErrorResponse "Invalid score or self-rating"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Ratee does not exist"
// @Security BearerAuth
// @Router /ratings [post]
func (h *ratingHandler) createRating(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	rating, err := h.ratingService.RecordRating(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record rating")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRatingResponse(rating))
}

// listRatings godoc
// @Summary List a user's ratings
// @Description Returns all ratings received by a user, newest first.
// @Tags ratings
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {array} dto.RatingResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /ratings/{userID} [get]
func (h *ratingHandler) listRatings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ratings, err := h.ratingService.ListRatingsForUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list ratings")
		return
	}

	responses := make([]dto.RatingResponse, len(ratings))
	for i := range ratings {
		responses[i] = dto.ToRatingResponse(&ratings[i])
	}
	c.JSON(http.StatusOK, responses)
}
