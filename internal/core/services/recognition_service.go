package services

import (
	"context"
	"io"
	"log/slog"

	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

type recognitionService struct {
	recognizer portssvc.CurrencyRecognizer
}

// NewRecognitionService creates a new recognition service.
func NewRecognitionService(recognizer portssvc.CurrencyRecognizer) portssvc.RecognitionSvcFacade {
	return &recognitionService{recognizer: recognizer}
}

// RecognizeCurrency classifies the uploaded banknote image via the external
// model server.
func (s *recognitionService) RecognizeCurrency(ctx context.Context, filename string, image io.Reader) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	label, err := s.recognizer.Recognize(ctx, filename, image)
	if err != nil {
		logger.Warn("Currency recognition failed", slog.String("filename", filename), slog.String("error", err.Error()))
		return "", err
	}

	logger.Info("Currency recognized", slog.String("filename", filename), slog.String("label", label))
	return label, nil
}
