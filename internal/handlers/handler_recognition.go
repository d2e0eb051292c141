package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

// recognitionHandler handles banknote image classification requests.
type recognitionHandler struct {
	recognitionService portssvc.RecognitionSvcFacade
}

// registerRecognitionRoutes registers the public recognition route.
func registerRecognitionRoutes(r *gin.Engine, recognitionService portssvc.RecognitionSvcFacade) {
	h := &recognitionHandler{recognitionService: recognitionService}
	r.POST("/recognize-currency", h.recognizeCurrency)
}

// recognizeCurrency godoc
// @Summary Recognize a banknote
// @Description Forwards the uploaded image to the classification model and returns the predicted currency label.
// @Tags recognition
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Banknote image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Missing or empty image"
// @Failure 502 {object} ErrorResponse
// @Router /recognize-currency [post]
func (h *recognitionHandler) recognizeCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No image uploaded"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Empty filename"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unreadable image upload"})
		return
	}
	defer file.Close()

	label, err := h.recognitionService.RecognizeCurrency(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to recognize currency")
		return
	}

	c.JSON(http.StatusOK, gin.H{"currency": label})
}
