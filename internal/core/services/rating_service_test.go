package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/core/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
)

// MockRatingRepository is a mock type for the RatingRepositoryFacade interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) SaveRating(ctx context.Context, rating domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) FindRatingsByRateeID(ctx context.Context, rateeID string) ([]domain.Rating, error) {
	args := m.Called(ctx, rateeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

// --- Test Suite Setup ---

type RatingServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockRatingRepository
	mockUserRepo *MockUserRepository
	service      portssvc.RatingSvcFacade
}

func (suite *RatingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRatingRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewRatingService(suite.mockRepo, suite.mockUserRepo)
}

// --- Test Cases ---

func (suite *RatingServiceTestSuite) TestRecordRating_Success() {
	ctx := context.Background()
	raterID := uuid.NewString()
	rateeID := uuid.NewString()
	req := dto.CreateRatingRequest{
		RateeID: rateeID,
		Score:   4,
		Comment: "Smooth trade",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, rateeID).Return(&domain.User{UserID: rateeID}, nil).Once()
	suite.mockRepo.On("SaveRating", ctx, mock.MatchedBy(func(r domain.Rating) bool {
		return r.RatingID != "" &&
			r.RaterID == raterID &&
			r.RateeID == rateeID &&
			r.Score == 4
	})).Return(nil).Once()

	rating, err := suite.service.RecordRating(ctx, raterID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(rating)
	suite.Equal("Smooth trade", rating.Comment)
	suite.WithinDuration(time.Now(), rating.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *RatingServiceTestSuite) TestRecordRating_SelfRating() {
	ctx := context.Background()
	raterID := uuid.NewString()
	req := dto.CreateRatingRequest{RateeID: raterID, Score: 5}

	rating, err := suite.service.RecordRating(ctx, raterID, req)

	suite.Require().Error(err)
	suite.Nil(rating)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRating", mock.Anything, mock.Anything)
}

func (suite *RatingServiceTestSuite) TestRecordRating_ScoreOutOfRange() {
	ctx := context.Background()
	raterID := uuid.NewString()

	for _, score := range []int{0, 6} {
		req := dto.CreateRatingRequest{RateeID: uuid.NewString(), Score: score}

		rating, err := suite.service.RecordRating(ctx, raterID, req)

		suite.Require().Error(err)
		suite.Nil(rating)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *RatingServiceTestSuite) TestRecordRating_UnknownRatee() {
	ctx := context.Background()
	raterID := uuid.NewString()
	rateeID := uuid.NewString()
	req := dto.CreateRatingRequest{RateeID: rateeID, Score: 3}

	suite.mockUserRepo.On("FindUserByID", ctx, rateeID).Return(nil, apperrors.ErrNotFound).Once()

	rating, err := suite.service.RecordRating(ctx, raterID, req)

	suite.Require().Error(err)
	suite.Nil(rating)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRating", mock.Anything, mock.Anything)
}

func (suite *RatingServiceTestSuite) TestListRatingsForUser_Success() {
	ctx := context.Background()
	rateeID := uuid.NewString()
	expected := []domain.Rating{
		{RatingID: uuid.NewString(), RateeID: rateeID, Score: 5},
		{RatingID: uuid.NewString(), RateeID: rateeID, Score: 2},
	}

	suite.mockRepo.On("FindRatingsByRateeID", ctx, rateeID).Return(expected, nil).Once()

	ratings, err := suite.service.ListRatingsForUser(ctx, rateeID)

	suite.Require().NoError(err)
	suite.Equal(expected, ratings)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RatingServiceTestSuite) TestListRatingsForUser_RepoError() {
	ctx := context.Background()
	rateeID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindRatingsByRateeID", ctx, rateeID).Return(nil, expectedErr).Once()

	ratings, err := suite.service.ListRatingsForUser(ctx, rateeID)

	suite.Require().Error(err)
	suite.Nil(ratings)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Test Suite ---

func TestRatingService(t *testing.T) {
	suite.Run(t, new(RatingServiceTestSuite))
}
