package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/duelhall/encounter-api/internal/catalog"
	"github.com/duelhall/encounter-api/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.InMemory
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = catalog.NewSRD()
}

func (s *CatalogTestSuite) TestSeededEntries() {
	s.Assert().Contains(s.catalog.CharacterIDs(), "fighter")
	s.Assert().Contains(s.catalog.MonsterIDs(), "goblin")
	s.Assert().Contains(s.catalog.SpellIDs(), "fire-bolt")
}

func (s *CatalogTestSuite) TestCharacterNotFound() {
	_, err := s.catalog.Character("paladin")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestMonsterNotFound() {
	_, err := s.catalog.Monster("tarrasque")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestSpellNotFound() {
	_, err := s.catalog.Spell("wish")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestTemplatesAreImmutable() {
	first, err := s.catalog.Monster("goblin")
	s.Require().NoError(err)

	// Wound the returned clone; the template must be unaffected
	first.ApplyDamage(5)
	first.Actions[0].Name = "Rusty Scimitar"

	second, err := s.catalog.Monster("goblin")
	s.Require().NoError(err)
	s.Assert().Equal(second.MaxHP, second.CurrentHP)
	s.Assert().Equal("Scimitar", second.Actions[0].Name)
}

func (s *CatalogTestSuite) TestCharacterClonesAreIndependent() {
	a, err := s.catalog.Character("fighter")
	s.Require().NoError(err)
	b, err := s.catalog.Character("fighter")
	s.Require().NoError(err)

	a.ApplyDamage(10)
	s.Assert().Equal(b.MaxHP, b.CurrentHP)
}

func (s *CatalogTestSuite) TestAddOverwrites() {
	char, err := s.catalog.Character("fighter")
	s.Require().NoError(err)

	char.Name = "Renamed"
	s.catalog.AddCharacter(char)

	got, err := s.catalog.Character("fighter")
	s.Require().NoError(err)
	s.Assert().Equal("Renamed", got.Name)
}
