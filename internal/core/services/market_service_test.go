package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/core/services"
)

// MockGoldProvider is a mock type for the GoldProvider interface
type MockGoldProvider struct {
	mock.Mock
}

func (m *MockGoldProvider) Spot(ctx context.Context) (*domain.GoldQuote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldQuote), args.Error(1)
}

func (m *MockGoldProvider) History(ctx context.Context, days int) (*domain.GoldHistory, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldHistory), args.Error(1)
}

// --- Test Suite Setup ---

type MarketServiceTestSuite struct {
	suite.Suite
	mockRates *MockRateProvider
	mockGold  *MockGoldProvider
	service   portssvc.MarketSvcFacade
}

func (suite *MarketServiceTestSuite) SetupTest() {
	suite.mockRates = new(MockRateProvider)
	suite.mockGold = new(MockGoldProvider)
	suite.service = services.NewMarketService(suite.mockRates, suite.mockGold, decimal.NewFromInt(2))
}

// --- Test Cases ---

func (suite *MarketServiceTestSuite) TestMargin_ExplicitPercent() {
	ctx := context.Background()

	suite.mockRates.On("LiveRates", ctx, "USD", []string{"EUR"}).Return(&domain.LiveRates{
		Source: "USD",
		Quotes: map[string]decimal.Decimal{"USDEUR": decimal.NewFromFloat(0.90)},
	}, nil).Once()

	info, err := suite.service.Margin(ctx, "USD", "EUR", decimal.NewFromInt(10))

	suite.Require().NoError(err)
	suite.Require().NotNil(info)
	suite.True(info.OfficialRate.Equal(decimal.NewFromFloat(0.90)))
	suite.True(info.PlatformRate.Equal(decimal.NewFromFloat(0.99)))
	suite.True(info.MarkupPercent.Equal(decimal.NewFromInt(10)))

	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *MarketServiceTestSuite) TestMargin_DefaultPercent() {
	ctx := context.Background()

	suite.mockRates.On("LiveRates", ctx, "USD", []string{"EUR"}).Return(&domain.LiveRates{
		Source: "USD",
		Quotes: map[string]decimal.Decimal{"USDEUR": decimal.NewFromInt(1)},
	}, nil).Once()

	info, err := suite.service.Margin(ctx, "USD", "EUR", decimal.Zero)

	suite.Require().NoError(err)
	// Zero percent falls back to the configured 2% default
	suite.True(info.MarkupPercent.Equal(decimal.NewFromInt(2)))
	suite.True(info.PlatformRate.Equal(decimal.NewFromFloat(1.02)))
}

func (suite *MarketServiceTestSuite) TestMargin_NegativePercent() {
	ctx := context.Background()

	info, err := suite.service.Margin(ctx, "USD", "EUR", decimal.NewFromInt(-1))

	suite.Require().Error(err)
	suite.Nil(info)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRates.AssertNotCalled(suite.T(), "LiveRates", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MarketServiceTestSuite) TestMargin_MissingQuote() {
	ctx := context.Background()

	suite.mockRates.On("LiveRates", ctx, "USD", []string{"XYZ"}).Return(&domain.LiveRates{
		Source: "USD",
		Quotes: map[string]decimal.Decimal{},
	}, nil).Once()

	info, err := suite.service.Margin(ctx, "USD", "XYZ", decimal.NewFromInt(5))

	suite.Require().Error(err)
	suite.Nil(info)
	suite.ErrorIs(err, apperrors.ErrUpstream)
}

func (suite *MarketServiceTestSuite) TestHistoricalRates_Validation() {
	ctx := context.Background()

	points, err := suite.service.HistoricalRates(ctx, "USD", "EUR", 0)

	suite.Require().Error(err)
	suite.Nil(points)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRates.AssertNotCalled(suite.T(), "HistoricalRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MarketServiceTestSuite) TestGoldSpot_Passthrough() {
	ctx := context.Background()
	expected := &domain.GoldQuote{Symbol: "GC=F", Currency: "USD", Price: decimal.NewFromFloat(2411.30)}

	suite.mockGold.On("Spot", ctx).Return(expected, nil).Once()

	quote, err := suite.service.GoldSpot(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, quote)

	suite.mockGold.AssertExpectations(suite.T())
}

func (suite *MarketServiceTestSuite) TestGoldHistory_UpstreamError() {
	ctx := context.Background()

	suite.mockGold.On("History", ctx, 30).Return(nil, apperrors.ErrUpstream).Once()

	history, err := suite.service.GoldHistory(ctx, 30)

	suite.Require().Error(err)
	suite.Nil(history)
	suite.ErrorIs(err, apperrors.ErrUpstream)
}

func (suite *MarketServiceTestSuite) TestDashboard_CombinesRatesAndGold() {
	ctx := context.Background()
	live := &domain.LiveRates{
		Source: "USD",
		Quotes: map[string]decimal.Decimal{"USDEUR": decimal.NewFromFloat(0.92)},
	}
	gold := &domain.GoldQuote{Symbol: "GC=F", Currency: "USD", Price: decimal.NewFromFloat(2411.30)}

	suite.mockRates.On("LiveRates", ctx, "USD", []string{"EUR"}).Return(live, nil).Once()
	suite.mockGold.On("Spot", ctx).Return(gold, nil).Once()

	view, err := suite.service.Dashboard(ctx, "USD", []string{"EUR"})

	suite.Require().NoError(err)
	suite.Require().NotNil(view)
	suite.Equal(live, view.Rates)
	suite.Equal(gold, view.Gold)

	suite.mockRates.AssertExpectations(suite.T())
	suite.mockGold.AssertExpectations(suite.T())
}

func (suite *MarketServiceTestSuite) TestDashboard_RatesFailure() {
	ctx := context.Background()

	suite.mockRates.On("LiveRates", ctx, "USD", mock.Anything).Return(nil, apperrors.ErrUpstream).Once()

	view, err := suite.service.Dashboard(ctx, "USD", nil)

	suite.Require().Error(err)
	suite.Nil(view)
	suite.ErrorIs(err, apperrors.ErrUpstream)

	suite.mockGold.AssertNotCalled(suite.T(), "Spot", mock.Anything)
}

func (suite *MarketServiceTestSuite) TestDashboard_GoldFailure() {
	ctx := context.Background()

	suite.mockRates.On("LiveRates", ctx, "USD", mock.Anything).Return(&domain.LiveRates{
		Source: "USD",
		Quotes: map[string]decimal.Decimal{"USDEUR": decimal.NewFromInt(1)},
	}, nil).Once()
	suite.mockGold.On("Spot", ctx).Return(nil, apperrors.ErrUpstream).Once()

	view, err := suite.service.Dashboard(ctx, "USD", nil)

	suite.Require().Error(err)
	suite.Nil(view)
	suite.ErrorIs(err, apperrors.ErrUpstream)
}

// --- Run Test Suite ---

func TestMarketService(t *testing.T) {
	suite.Run(t, new(MarketServiceTestSuite))
}
