package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/core/services"
)

// MockGeoLocator is a mock type for the GeoLocator interface
type MockGeoLocator struct {
	mock.Mock
}

func (m *MockGeoLocator) CountryForIP(ctx context.Context, ip string) (string, error) {
	args := m.Called(ctx, ip)
	return args.String(0), args.Error(1)
}

// --- Test Suite Setup ---

type LocationServiceTestSuite struct {
	suite.Suite
	mockGeo *MockGeoLocator
	service portssvc.LocationSvcFacade
}

func (suite *LocationServiceTestSuite) SetupTest() {
	suite.mockGeo = new(MockGeoLocator)
	suite.service = services.NewLocationService(suite.mockGeo)
}

// --- Test Cases ---

func (suite *LocationServiceTestSuite) TestDetectCurrency_KnownCountry() {
	ctx := context.Background()

	suite.mockGeo.On("CountryForIP", ctx, "5.6.7.8").Return("LB", nil).Once()

	locale, err := suite.service.DetectCurrency(ctx, "5.6.7.8")

	suite.Require().NoError(err)
	suite.Equal("LB", locale.Country)
	suite.Equal("LBP", locale.DefaultCurrency)
	suite.Equal([]string{"USD", "EUR", "AED"}, locale.TravelSuggestions)

	suite.mockGeo.AssertExpectations(suite.T())
}

func (suite *LocationServiceTestSuite) TestDetectCurrency_UnknownCountry() {
	ctx := context.Background()

	suite.mockGeo.On("CountryForIP", ctx, "5.6.7.8").Return("AQ", nil).Once()

	locale, err := suite.service.DetectCurrency(ctx, "5.6.7.8")

	suite.Require().NoError(err)
	suite.Equal("AQ", locale.Country)
	suite.Equal("USD", locale.DefaultCurrency)
	suite.Equal([]string{"USD", "EUR"}, locale.TravelSuggestions)
}

func (suite *LocationServiceTestSuite) TestDetectCurrency_LookupFailure() {
	ctx := context.Background()

	suite.mockGeo.On("CountryForIP", ctx, "5.6.7.8").Return("", apperrors.ErrUpstream).Once()

	locale, err := suite.service.DetectCurrency(ctx, "5.6.7.8")

	// A failing lookup degrades to the US defaults, never errors
	suite.Require().NoError(err)
	suite.Equal("US", locale.Country)
	suite.Equal("USD", locale.DefaultCurrency)
}

// --- Run Test Suite ---

func TestLocationService(t *testing.T) {
	suite.Run(t, new(LocationServiceTestSuite))
}
