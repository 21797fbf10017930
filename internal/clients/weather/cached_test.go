package weather_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-runner/internal/clients/weather"
	weathermock "github.com/KirkDiggler/dungeon-runner/internal/clients/weather/mock"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

type CachedClientTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockNext *weathermock.MockClient
	client   weather.Client
	ctx      context.Context
}

func TestCachedClientSuite(t *testing.T) {
	suite.Run(t, new(CachedClientTestSuite))
}

func (s *CachedClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockNext = weathermock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	client, err := weather.NewCached(&weather.CachedConfig{Client: s.mockNext})
	s.Require().NoError(err)
	s.client = client
}

func (s *CachedClientTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CachedClientTestSuite) TestNewCachedRequiresClient() {
	_, err := weather.NewCached(&weather.CachedConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "client cannot be nil")
}

func (s *CachedClientTestSuite) TestNearbyCoordinatesShareAReading() {
	reading := 64.4
	s.mockNext.EXPECT().
		CurrentTemperature(s.ctx, 51.5074, -0.1278).
		Return(&reading, nil)

	first, err := s.client.CurrentTemperature(s.ctx, 51.5074, -0.1278)
	s.Require().NoError(err)
	second, err := s.client.CurrentTemperature(s.ctx, 51.5089, -0.1251)
	s.Require().NoError(err)

	s.Equal(64.4, *first)
	s.Equal(64.4, *second)
}

func (s *CachedClientTestSuite) TestDistantCoordinatesMiss() {
	london, paris := 64.4, 70.1
	s.mockNext.EXPECT().CurrentTemperature(s.ctx, 51.5, -0.12).Return(&london, nil)
	s.mockNext.EXPECT().CurrentTemperature(s.ctx, 48.85, 2.35).Return(&paris, nil)

	a, err := s.client.CurrentTemperature(s.ctx, 51.5, -0.12)
	s.Require().NoError(err)
	b, err := s.client.CurrentTemperature(s.ctx, 48.85, 2.35)
	s.Require().NoError(err)

	s.Equal(64.4, *a)
	s.Equal(70.1, *b)
}

func (s *CachedClientTestSuite) TestErrorsAndAbsentReadingsAreNotCached() {
	gomock.InOrder(
		s.mockNext.EXPECT().CurrentTemperature(s.ctx, 1.0, 1.0).Return(nil, errors.Unavailablef("down")),
		s.mockNext.EXPECT().CurrentTemperature(s.ctx, 1.0, 1.0).Return(nil, nil),
		s.mockNext.EXPECT().CurrentTemperature(s.ctx, 1.0, 1.0).Return(nil, nil),
	)

	_, err := s.client.CurrentTemperature(s.ctx, 1, 1)
	s.True(errors.IsUnavailable(err))

	for i := 0; i < 2; i++ {
		reading, err := s.client.CurrentTemperature(s.ctx, 1, 1)
		s.Require().NoError(err)
		s.Nil(reading)
	}
}
