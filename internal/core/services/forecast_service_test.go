package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/core/services"
)

type ForecastServiceTestSuite struct {
	suite.Suite
	mockRates *MockRateProvider
	service   portssvc.ForecastSvcFacade
}

func (suite *ForecastServiceTestSuite) SetupTest() {
	suite.mockRates = new(MockRateProvider)
	suite.service = services.NewForecastService(suite.mockRates)
}

// history builds a daily series ending today with the given rates.
func (suite *ForecastServiceTestSuite) history(rates ...float64) []domain.RatePoint {
	points := make([]domain.RatePoint, len(rates))
	start := time.Now().AddDate(0, 0, -len(rates)+1).Truncate(24 * time.Hour)
	for i, r := range rates {
		points[i] = domain.RatePoint{
			Date: start.AddDate(0, 0, i),
			Rate: decimal.NewFromFloat(r),
		}
	}
	return points
}

// --- Test Cases ---

func (suite *ForecastServiceTestSuite) TestForecast_RisingTrendSuggestsBuy() {
	ctx := context.Background()
	series := suite.history(1.00, 1.01, 1.02, 1.03, 1.04, 1.05, 1.06, 1.07)

	suite.mockRates.On("HistoricalRates", ctx, "USD", "EUR", 8).Return(series, nil).Once()

	forecast, err := suite.service.Forecast(ctx, "USD", "EUR", 8, 3)

	suite.Require().NoError(err)
	suite.Require().NotNil(forecast)
	suite.Equal("USD", forecast.Source)
	suite.Equal("EUR", forecast.Currency)
	suite.Equal(domain.SuggestBuy, forecast.Suggestion)
	suite.Require().Len(forecast.Points, 3)

	// Projected dates continue daily from the last observation
	last := series[len(series)-1].Date
	for h, p := range forecast.Points {
		suite.Equal(last.AddDate(0, 0, h+1), p.Date)
		suite.True(p.Lower.Equal(p.Yhat))
		suite.True(p.Upper.Equal(p.Yhat))
	}
	// A strictly rising series projects above its latest observation
	suite.True(forecast.Points[0].Yhat.GreaterThan(series[len(series)-1].Rate))

	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *ForecastServiceTestSuite) TestForecast_FallingTrendSuggestsSell() {
	ctx := context.Background()
	series := suite.history(1.07, 1.06, 1.05, 1.04, 1.03, 1.02, 1.01, 1.00)

	suite.mockRates.On("HistoricalRates", ctx, "USD", "EUR", 8).Return(series, nil).Once()

	forecast, err := suite.service.Forecast(ctx, "USD", "EUR", 8, 1)

	suite.Require().NoError(err)
	suite.Equal(domain.SuggestSell, forecast.Suggestion)

	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *ForecastServiceTestSuite) TestForecast_FlatSeriesSuggestsHold() {
	ctx := context.Background()
	series := suite.history(1.05, 1.05, 1.05, 1.05, 1.05, 1.05)

	suite.mockRates.On("HistoricalRates", ctx, "USD", "EUR", 6).Return(series, nil).Once()

	forecast, err := suite.service.Forecast(ctx, "USD", "EUR", 6, 2)

	suite.Require().NoError(err)
	suite.Equal(domain.SuggestHold, forecast.Suggestion)

	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *ForecastServiceTestSuite) TestForecast_Validation() {
	ctx := context.Background()

	_, err := suite.service.Forecast(ctx, "USD", "EUR", 1, 3)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Forecast(ctx, "USD", "EUR", 30, 0)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRates.AssertNotCalled(suite.T(), "HistoricalRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ForecastServiceTestSuite) TestForecast_TooLittleHistory() {
	ctx := context.Background()
	series := suite.history(1.05)

	suite.mockRates.On("HistoricalRates", ctx, "USD", "EUR", 30).Return(series, nil).Once()

	forecast, err := suite.service.Forecast(ctx, "USD", "EUR", 30, 3)

	suite.Require().Error(err)
	suite.Nil(forecast)
	suite.ErrorIs(err, apperrors.ErrNoData)
}

func (suite *ForecastServiceTestSuite) TestForecast_ProviderError() {
	ctx := context.Background()

	suite.mockRates.On("HistoricalRates", ctx, "USD", "EUR", 30).Return(nil, apperrors.ErrUpstream).Once()

	forecast, err := suite.service.Forecast(ctx, "USD", "EUR", 30, 3)

	suite.Require().Error(err)
	suite.Nil(forecast)
	suite.ErrorIs(err, apperrors.ErrUpstream)
}

// --- Run Test Suite ---

func TestForecastService(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}
