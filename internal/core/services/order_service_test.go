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

// MockOrderRepository is a mock type for the OrderRepositoryFacade interface
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOpenOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) AcceptOrder(ctx context.Context, orderID, acceptorID string, now time.Time) (*domain.Escrow, error) {
	args := m.Called(ctx, orderID, acceptorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Escrow), args.Error(1)
}

func (m *MockOrderRepository) CancelOrder(ctx context.Context, orderID, ownerID string, now time.Time) error {
	args := m.Called(ctx, orderID, ownerID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOrderRepository
	service  portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrderRepository)
	suite.service = services.NewOrderService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.CreateOrderRequest{
		Side:           "SELL",
		BaseCurrency:   "USD",
		TargetCurrency: "LBP",
		Amount:         decimal.NewFromInt(100),
		Price:          decimal.NewFromInt(89500),
	}

	suite.mockRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.OrderID != "" &&
			o.OwnerID == ownerID &&
			o.Side == domain.Sell &&
			o.BaseCurrency == "USD" &&
			o.TargetCurrency == "LBP" &&
			o.Status == domain.OrderOpen
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.NotEmpty(order.OrderID)
	suite.Equal(domain.OrderOpen, order.Status)
	suite.True(order.Amount.Equal(req.Amount))
	suite.True(order.Price.Equal(req.Price))
	suite.WithinDuration(time.Now(), order.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Validation() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	cases := []dto.CreateOrderRequest{
		{Side: "SELL", BaseCurrency: "USD", TargetCurrency: "LBP", Amount: decimal.Zero, Price: decimal.NewFromInt(1)},
		{Side: "SELL", BaseCurrency: "USD", TargetCurrency: "LBP", Amount: decimal.NewFromInt(1), Price: decimal.NewFromInt(-1)},
		{Side: "BUY", BaseCurrency: "USD", TargetCurrency: "USD", Amount: decimal.NewFromInt(1), Price: decimal.NewFromInt(1)},
	}

	for _, req := range cases {
		order, err := suite.service.CreateOrder(ctx, ownerID, req)

		suite.Require().Error(err)
		suite.Nil(order)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_SaveError() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.CreateOrderRequest{
		Side:           "BUY",
		BaseCurrency:   "EUR",
		TargetCurrency: "USD",
		Amount:         decimal.NewFromInt(50),
		Price:          decimal.NewFromFloat(1.08),
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.Order")).Return(expectedErr).Once()

	order, err := suite.service.CreateOrder(ctx, ownerID, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestListOpenOrders_Success() {
	ctx := context.Background()
	expected := []domain.Order{
		{OrderID: uuid.NewString(), Status: domain.OrderOpen},
		{OrderID: uuid.NewString(), Status: domain.OrderOpen},
	}

	suite.mockRepo.On("ListOpenOrders", ctx).Return(expected, nil).Once()

	orders, err := suite.service.ListOpenOrders(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, orders)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestAcceptOrder_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()
	acceptorID := uuid.NewString()
	expected := &domain.Escrow{
		EscrowID:       uuid.NewString(),
		OrderID:        orderID,
		BuyerID:        acceptorID,
		SellerID:       uuid.NewString(),
		Amount:         decimal.NewFromInt(100),
		Price:          decimal.NewFromInt(89500),
		TargetCurrency: "LBP",
		Status:         domain.EscrowPending,
	}

	suite.mockRepo.On("AcceptOrder", ctx, orderID, acceptorID, mock.AnythingOfType("time.Time")).Return(expected, nil).Once()

	escrow, err := suite.service.AcceptOrder(ctx, orderID, acceptorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(escrow)
	suite.Equal(domain.EscrowPending, escrow.Status)
	suite.Equal(acceptorID, escrow.BuyerID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestAcceptOrder_InsufficientFunds() {
	ctx := context.Background()
	orderID := uuid.NewString()
	acceptorID := uuid.NewString()

	suite.mockRepo.On("AcceptOrder", ctx, orderID, acceptorID, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrInsufficientFunds).Once()

	escrow, err := suite.service.AcceptOrder(ctx, orderID, acceptorID)

	suite.Require().Error(err)
	suite.Nil(escrow)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestAcceptOrder_NotOpen() {
	ctx := context.Background()
	orderID := uuid.NewString()
	acceptorID := uuid.NewString()

	suite.mockRepo.On("AcceptOrder", ctx, orderID, acceptorID, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrConflict).Once()

	escrow, err := suite.service.AcceptOrder(ctx, orderID, acceptorID)

	suite.Require().Error(err)
	suite.Nil(escrow)
	suite.ErrorIs(err, apperrors.ErrConflict)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCancelOrder_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()
	ownerID := uuid.NewString()

	suite.mockRepo.On("CancelOrder", ctx, orderID, ownerID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.CancelOrder(ctx, orderID, ownerID)

	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCancelOrder_Forbidden() {
	ctx := context.Background()
	orderID := uuid.NewString()
	callerID := uuid.NewString()

	suite.mockRepo.On("CancelOrder", ctx, orderID, callerID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrForbidden).Once()

	err := suite.service.CancelOrder(ctx, orderID, callerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
