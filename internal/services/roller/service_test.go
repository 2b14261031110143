package roller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/primedice/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/primedice/internal/common/uuid/mocks"
	"github.com/KirkDiggler/primedice/internal/dice"
	diceMocks "github.com/KirkDiggler/primedice/internal/dice/mocks"
	"github.com/KirkDiggler/primedice/internal/logging"
	"github.com/KirkDiggler/primedice/internal/metrics"
	"github.com/KirkDiggler/primedice/internal/models"
	"github.com/KirkDiggler/primedice/internal/primality"
	rollRepo "github.com/KirkDiggler/primedice/internal/repositories/roll"
	rollMocks "github.com/KirkDiggler/primedice/internal/repositories/roll/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RollerServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *mocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	mockRollRepo   *rollMocks.MockRepository
	rollerService  Service
	ctx            context.Context

	// Test data
	testTime       time.Time
	testRollID     string
	testChannelID  string
	testPlayerID   string
	testPlayerName string

	rollAndCheckInput *RollAndCheckInput
}

func (s *RollerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockRollRepo = rollMocks.NewMockRepository(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testRollID = "test-roll-id"
	s.testChannelID = "test-channel-id"
	s.testPlayerID = "test-player-id"
	s.testPlayerName = "Test Player"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testRollID).AnyTimes()

	s.rollAndCheckInput = &RollAndCheckInput{
		ChannelID:  s.testChannelID,
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayerName,
	}

	svc, err := New(&Config{
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		RollRepo:      s.mockRollRepo,
		Metrics:       metrics.New(),
		Logger:        logging.NewNop(),
	})
	s.Require().NoError(err)
	s.rollerService = svc
}

func (s *RollerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRollerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RollerServiceTestSuite))
}

func (s *RollerServiceTestSuite) expectedRoll(value int, isPrime bool) *models.Roll {
	return &models.Roll{
		ID:         s.testRollID,
		Value:      value,
		IsPrime:    isPrime,
		ChannelID:  s.testChannelID,
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayerName,
		Timestamp:  s.testTime,
	}
}

func (s *RollerServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *RollerServiceTestSuite) TestRollAndCheckPrime() {
	s.mockDiceRoller.EXPECT().Roll().Return(3)
	s.mockRollRepo.EXPECT().
		SaveRoll(gomock.Any(), &rollRepo.SaveRollInput{Roll: s.expectedRoll(3, true)}).
		Return(nil)

	output, err := s.rollerService.RollAndCheck(s.ctx, s.rollAndCheckInput)
	s.Require().NoError(err)
	s.True(output.Recorded)
	s.Equal(s.expectedRoll(3, true), output.Roll)
}

func (s *RollerServiceTestSuite) TestRollAndCheckEveryFace() {
	primes := map[int]bool{1: false, 2: true, 3: true, 4: false, 5: true, 6: false}

	for face := 1; face <= dice.DefaultSides; face++ {
		s.mockDiceRoller.EXPECT().Roll().Return(face)
		s.mockRollRepo.EXPECT().SaveRoll(gomock.Any(), gomock.Any()).Return(nil)

		output, err := s.rollerService.RollAndCheck(s.ctx, s.rollAndCheckInput)
		s.Require().NoError(err)
		s.Equal(face, output.Roll.Value)
		s.Equal(primes[face], output.Roll.IsPrime, "face %d", face)
	}
}

func (s *RollerServiceTestSuite) TestRollAndCheckRepositoryError() {
	s.mockDiceRoller.EXPECT().Roll().Return(4)
	s.mockRollRepo.EXPECT().SaveRoll(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := s.rollerService.RollAndCheck(s.ctx, s.rollAndCheckInput)
	s.Require().Error(err)
	s.Contains(err.Error(), "redis down")
}

func (s *RollerServiceTestSuite) TestRollAndCheckWithoutRepository() {
	svc, err := New(&Config{
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Logger:        logging.NewNop(),
	})
	s.Require().NoError(err)

	s.mockDiceRoller.EXPECT().Roll().Return(5)

	output, err := svc.RollAndCheck(s.ctx, s.rollAndCheckInput)
	s.Require().NoError(err)
	s.False(output.Recorded)
	s.Equal(5, output.Roll.Value)
	s.True(output.Roll.IsPrime)

	_, err = svc.GetHistory(s.ctx, &GetHistoryInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrNoHistory)

	_, err = svc.GetStats(s.ctx, &GetStatsInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrNoHistory)

	_, err = svc.ResetHistory(s.ctx, &ResetHistoryInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrNoHistory)
}

func (s *RollerServiceTestSuite) TestRollAndCheckValidation() {
	_, err := s.rollerService.RollAndCheck(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.rollerService.RollAndCheck(s.ctx, &RollAndCheckInput{})
	s.ErrorIs(err, ErrMissingChannel)
}

func (s *RollerServiceTestSuite) TestRollAndCheckWithSeededRoller() {
	// A real roller on a fixed source, no mocks for the die
	svc, err := New(&Config{
		DiceRoller:    dice.New(&dice.Config{Source: fixedSource(2)}),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Logger:        logging.NewNop(),
	})
	s.Require().NoError(err)

	output, err := svc.RollAndCheck(s.ctx, s.rollAndCheckInput)
	s.Require().NoError(err)
	s.Equal(3, output.Roll.Value)
	s.True(output.Roll.IsPrime)
}

func (s *RollerServiceTestSuite) TestCheckPrime() {
	output, err := s.rollerService.CheckPrime(s.ctx, &CheckPrimeInput{Text: "17"})
	s.Require().NoError(err)
	s.Equal(int64(17), output.N)
	s.True(output.IsPrime)

	output, err = s.rollerService.CheckPrime(s.ctx, &CheckPrimeInput{Text: "91"})
	s.Require().NoError(err)
	s.False(output.IsPrime)

	_, err = s.rollerService.CheckPrime(s.ctx, &CheckPrimeInput{Text: "ninety-one"})
	s.ErrorIs(err, primality.ErrNotInteger)

	_, err = s.rollerService.CheckPrime(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *RollerServiceTestSuite) TestGetHistoryDefaultLimit() {
	rolls := []*models.Roll{s.expectedRoll(6, false), s.expectedRoll(2, true)}
	s.mockRollRepo.EXPECT().
		ListRolls(gomock.Any(), &rollRepo.ListRollsInput{ChannelID: s.testChannelID, Limit: DefaultHistoryLimit}).
		Return(&rollRepo.ListRollsOutput{Rolls: rolls}, nil)

	output, err := s.rollerService.GetHistory(s.ctx, &GetHistoryInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(rolls, output.Rolls)
}

func (s *RollerServiceTestSuite) TestGetHistoryExplicitLimit() {
	s.mockRollRepo.EXPECT().
		ListRolls(gomock.Any(), &rollRepo.ListRollsInput{ChannelID: s.testChannelID, Limit: 3}).
		Return(&rollRepo.ListRollsOutput{Rolls: []*models.Roll{}}, nil)

	output, err := s.rollerService.GetHistory(s.ctx, &GetHistoryInput{ChannelID: s.testChannelID, Limit: 3})
	s.Require().NoError(err)
	s.Empty(output.Rolls)

	_, err = s.rollerService.GetHistory(s.ctx, &GetHistoryInput{})
	s.ErrorIs(err, ErrMissingChannel)
}

func (s *RollerServiceTestSuite) TestGetStats() {
	stats := &models.Stats{
		ChannelID: s.testChannelID,
		Total:     3,
		Faces:     map[int]int64{2: 1, 4: 2},
		Primes:    1,
	}
	s.mockRollRepo.EXPECT().
		GetStats(gomock.Any(), &rollRepo.GetStatsInput{ChannelID: s.testChannelID}).
		Return(stats, nil)

	output, err := s.rollerService.GetStats(s.ctx, &GetStatsInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(stats, output.Stats)
}

func (s *RollerServiceTestSuite) TestGetStatsError() {
	s.mockRollRepo.EXPECT().GetStats(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := s.rollerService.GetStats(s.ctx, &GetStatsInput{ChannelID: s.testChannelID})
	s.Error(err)
}

func (s *RollerServiceTestSuite) TestResetHistory() {
	s.mockRollRepo.EXPECT().
		ClearChannel(gomock.Any(), &rollRepo.ClearChannelInput{ChannelID: s.testChannelID}).
		Return(nil)

	output, err := s.rollerService.ResetHistory(s.ctx, &ResetHistoryInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.True(output.Success)
}

// fixedSource always lands on the same index
type fixedSource int

func (f fixedSource) Intn(n int) int {
	return int(f) % n
}
