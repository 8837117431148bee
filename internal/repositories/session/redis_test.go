package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/duelhall/encounter-api/internal/entities"
	"github.com/duelhall/encounter-api/internal/errors"
	"github.com/duelhall/encounter-api/internal/repositories/session"
	"github.com/duelhall/encounter-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    session.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := session.NewRedisRepository(&session.Config{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testSession() *entities.Session {
	return &entities.Session{
		ID: "sess_123",
		Character: &entities.Character{
			ID:        "fighter",
			Name:      "Brynn Ironvale",
			MaxHP:     28,
			CurrentHP: 28,
			Weapons: []entities.Weapon{
				{ID: "longsword", Name: "Longsword", AttackAbility: entities.AbilityStrength, DamageFormula: "1d8+3", DamageType: "slashing"},
			},
		},
		Monster: &entities.Monster{
			ID:        "goblin",
			Name:      "Goblin",
			MaxHP:     7,
			CurrentHP: 7,
			SaveBonuses: map[entities.Ability]int{
				entities.AbilityDexterity: 2,
			},
		},
		Round:     1,
		Log:       []string{"combat begins"},
		Narration: []string{"The goblin snarls."},
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoundTrip() {
	sess := s.testSession()

	_, err := s.repo.Save(s.ctx, session.SaveInput{Session: sess})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, session.GetInput{ID: "sess_123"})
	s.Require().NoError(err)
	s.Assert().Equal(sess, output.Session)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, session.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetEmptyID() {
	_, err := s.repo.Get(s.ctx, session.GetInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	sess := s.testSession()

	_, err := s.repo.Save(s.ctx, session.SaveInput{Session: sess})
	s.Require().NoError(err)

	sess.Round = 3
	sess.Monster.CurrentHP = 0
	sess.AppendLog("the goblin falls")

	_, err = s.repo.Save(s.ctx, session.SaveInput{Session: sess})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, session.GetInput{ID: "sess_123"})
	s.Require().NoError(err)
	s.Assert().Equal(3, output.Session.Round)
	s.Assert().Equal(0, output.Session.Monster.CurrentHP)
	s.Assert().Equal("the goblin falls", output.Session.LastLogLine())
}

func (s *RedisRepositoryTestSuite) TestSaveNilSession() {
	_, err := s.repo.Save(s.ctx, session.SaveInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveEmptyID() {
	_, err := s.repo.Save(s.ctx, session.SaveInput{Session: &entities.Session{}})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
