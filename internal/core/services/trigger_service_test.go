package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/core/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
)

// MockTriggerRepository is a mock type for the TriggerRepositoryFacade interface
type MockTriggerRepository struct {
	mock.Mock
}

func (m *MockTriggerRepository) SaveTrigger(ctx context.Context, trigger domain.RateTrigger) error {
	args := m.Called(ctx, trigger)
	return args.Error(0)
}

func (m *MockTriggerRepository) ListUntriggered(ctx context.Context) ([]domain.RateTrigger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateTrigger), args.Error(1)
}

func (m *MockTriggerRepository) MarkTriggered(ctx context.Context, triggerID string) (bool, error) {
	args := m.Called(ctx, triggerID)
	return args.Bool(0), args.Error(1)
}

// MockRateProvider is a mock type for the RateProvider interface
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) LiveRates(ctx context.Context, source string, currencies []string) (*domain.LiveRates, error) {
	args := m.Called(ctx, source, currencies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LiveRates), args.Error(1)
}

func (m *MockRateProvider) HistoricalRates(ctx context.Context, source, currency string, days int) ([]domain.RatePoint, error) {
	args := m.Called(ctx, source, currency, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RatePoint), args.Error(1)
}

// --- Test Suite Setup ---

type TriggerServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockTriggerRepository
	mockRates *MockRateProvider
	service   portssvc.TriggerSvcFacade
}

func (suite *TriggerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTriggerRepository)
	suite.mockRates = new(MockRateProvider)
	suite.service = services.NewTriggerService(suite.mockRepo, suite.mockRates)
}

func (suite *TriggerServiceTestSuite) untriggered(base, target string, op domain.TriggerOperator, threshold int64) domain.RateTrigger {
	return domain.RateTrigger{
		TriggerID:      uuid.NewString(),
		BaseCurrency:   base,
		TargetCurrency: target,
		Operator:       op,
		Threshold:      decimal.NewFromInt(threshold),
		Triggered:      false,
		CreatedAt:      time.Now(),
	}
}

// --- Test Cases ---

func (suite *TriggerServiceTestSuite) TestCreateTrigger_Success() {
	ctx := context.Background()
	req := dto.CreateTriggerRequest{
		BaseCurrency:   "USD",
		TargetCurrency: "EUR",
		Operator:       ">=",
		Threshold:      decimal.NewFromFloat(0.95),
	}

	suite.mockRepo.On("SaveTrigger", ctx, mock.MatchedBy(func(t domain.RateTrigger) bool {
		return t.TriggerID != "" &&
			t.Operator == domain.OpGreaterOrEq &&
			!t.Triggered
	})).Return(nil).Once()

	trigger, err := suite.service.CreateTrigger(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(trigger)
	suite.Equal(domain.OpGreaterOrEq, trigger.Operator)
	suite.False(trigger.Triggered)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TriggerServiceTestSuite) TestCreateTrigger_Validation() {
	ctx := context.Background()

	cases := []dto.CreateTriggerRequest{
		{BaseCurrency: "USD", TargetCurrency: "EUR", Operator: "!=", Threshold: decimal.NewFromInt(1)},
		{BaseCurrency: "USD", TargetCurrency: "EUR", Operator: ">", Threshold: decimal.Zero},
		{BaseCurrency: "USD", TargetCurrency: "USD", Operator: ">", Threshold: decimal.NewFromInt(1)},
	}

	for _, req := range cases {
		trigger, err := suite.service.CreateTrigger(ctx, req)

		suite.Require().Error(err)
		suite.Nil(trigger)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTrigger", mock.Anything, mock.Anything)
}

func (suite *TriggerServiceTestSuite) TestCheckTriggers_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListUntriggered", ctx).Return([]domain.RateTrigger{}, nil).Once()

	outcome, err := suite.service.CheckTriggers(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(outcome)
	suite.Zero(outcome.Checked)
	suite.Empty(outcome.Alerts)
	suite.Empty(outcome.Failures)

	suite.mockRates.AssertNotCalled(suite.T(), "LiveRates", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TriggerServiceTestSuite) TestCheckTriggers_FiresAndSkips() {
	ctx := context.Background()
	firing := suite.untriggered("USD", "EUR", domain.OpGreaterThan, 1)  // 1.10 > 1 fires
	dormant := suite.untriggered("USD", "GBP", domain.OpLessThan, 1)   // 1.20 < 1 does not

	suite.mockRepo.On("ListUntriggered", ctx).Return([]domain.RateTrigger{firing, dormant}, nil).Once()
	suite.mockRates.On("LiveRates", ctx, "USD", []string{"EUR", "GBP"}).Return(&domain.LiveRates{
		Source: "USD",
		Quotes: map[string]decimal.Decimal{
			"USDEUR": decimal.NewFromFloat(1.10),
			"USDGBP": decimal.NewFromFloat(1.20),
		},
	}, nil).Once()
	suite.mockRepo.On("MarkTriggered", ctx, firing.TriggerID).Return(true, nil).Once()

	outcome, err := suite.service.CheckTriggers(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, outcome.Checked)
	suite.Require().Len(outcome.Alerts, 1)
	suite.Equal(firing.TriggerID, outcome.Alerts[0].Trigger.TriggerID)
	suite.True(outcome.Alerts[0].Trigger.Triggered)
	suite.True(outcome.Alerts[0].LiveRate.Equal(decimal.NewFromFloat(1.10)))
	suite.Empty(outcome.Failures)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *TriggerServiceTestSuite) TestCheckTriggers_ProviderFailure() {
	ctx := context.Background()
	trigger := suite.untriggered("USD", "EUR", domain.OpGreaterThan, 1)

	suite.mockRepo.On("ListUntriggered", ctx).Return([]domain.RateTrigger{trigger}, nil).Once()
	suite.mockRates.On("LiveRates", ctx, "USD", []string{"EUR"}).Return(nil, apperrors.ErrUpstream).Once()

	outcome, err := suite.service.CheckTriggers(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, outcome.Checked)
	suite.Empty(outcome.Alerts)
	suite.Require().Len(outcome.Failures, 1)
	suite.Equal(trigger.TriggerID, outcome.Failures[0].TriggerID)

	suite.mockRepo.AssertNotCalled(suite.T(), "MarkTriggered", mock.Anything, mock.Anything)
}

func (suite *TriggerServiceTestSuite) TestCheckTriggers_MissingQuote() {
	ctx := context.Background()
	trigger := suite.untriggered("USD", "XYZ", domain.OpGreaterThan, 1)

	suite.mockRepo.On("ListUntriggered", ctx).Return([]domain.RateTrigger{trigger}, nil).Once()
	suite.mockRates.On("LiveRates", ctx, "USD", []string{"XYZ"}).Return(&domain.LiveRates{
		Source: "USD",
		Quotes: map[string]decimal.Decimal{},
	}, nil).Once()

	outcome, err := suite.service.CheckTriggers(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(outcome.Failures, 1)
	suite.Contains(outcome.Failures[0].Reason, "USDXYZ")
}

func (suite *TriggerServiceTestSuite) TestCheckTriggers_ConcurrentFlip() {
	ctx := context.Background()
	trigger := suite.untriggered("USD", "EUR", domain.OpGreaterThan, 1)

	suite.mockRepo.On("ListUntriggered", ctx).Return([]domain.RateTrigger{trigger}, nil).Once()
	suite.mockRates.On("LiveRates", ctx, "USD", []string{"EUR"}).Return(&domain.LiveRates{
		Source: "USD",
		Quotes: map[string]decimal.Decimal{"USDEUR": decimal.NewFromFloat(1.10)},
	}, nil).Once()
	// Another pass won the flip; no alert from this one
	suite.mockRepo.On("MarkTriggered", ctx, trigger.TriggerID).Return(false, nil).Once()

	outcome, err := suite.service.CheckTriggers(ctx)

	suite.Require().NoError(err)
	suite.Empty(outcome.Alerts)
	suite.Empty(outcome.Failures)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TriggerServiceTestSuite) TestCheckTriggers_ListError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListUntriggered", ctx).Return(nil, expectedErr).Once()

	outcome, err := suite.service.CheckTriggers(ctx)

	suite.Require().Error(err)
	suite.Nil(outcome)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Test Suite ---

func TestTriggerService(t *testing.T) {
	suite.Run(t, new(TriggerServiceTestSuite))
}
