package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/duelhall/encounter-api/internal/entities"
)

type EntitiesTestSuite struct {
	suite.Suite
	char *entities.Character
}

func TestEntitiesSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) SetupTest() {
	s.char = &entities.Character{
		ID:    "fighter_premade",
		Name:  "Brana",
		Class: "fighter",
		Level: 3,
		AbilityScores: entities.AbilityScores{
			Strength:     16,
			Dexterity:    12,
			Constitution: 14,
			Intelligence: 10,
			Wisdom:       13,
			Charisma:     8,
		},
		ProficiencyBonus: 2,
		ArmorClass:       16,
		MaxHP:            28,
		CurrentHP:        28,
		Weapons: []entities.Weapon{
			{ID: "longsword", Name: "Longsword", AttackAbility: entities.AbilityStrength, DamageFormula: "1d8+3", DamageType: "slashing"},
			{ID: "dagger", Name: "Dagger", AttackAbility: entities.AbilityDexterity, DamageFormula: "1d4+1", DamageType: "piercing", Finesse: true},
		},
		SaveProficiencies:  []string{"str", "con"},
		SkillProficiencies: []string{"athletics", "perception"},
	}
}

func (s *EntitiesTestSuite) TestProficiencyBonusForLevel() {
	testCases := []struct {
		level    int
		expected int
	}{
		{1, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {12, 4}, {13, 5}, {17, 6}, {20, 6},
	}
	for _, tc := range testCases {
		s.Assert().Equal(tc.expected, entities.ProficiencyBonusForLevel(tc.level), "level %d", tc.level)
	}
}

func (s *EntitiesTestSuite) TestAbilityModifier() {
	mod, ok := s.char.AbilityModifier(entities.AbilityStrength)
	s.Require().True(ok)
	s.Assert().Equal(3, mod)

	mod, ok = s.char.AbilityModifier(entities.AbilityCharisma)
	s.Require().True(ok)
	s.Assert().Equal(-1, mod)

	_, ok = s.char.AbilityModifier("luck")
	s.Assert().False(ok)
}

func (s *EntitiesTestSuite) TestSaveBonus() {
	bonus, ok := s.char.SaveBonus(entities.AbilityStrength)
	s.Require().True(ok)
	s.Assert().Equal(5, bonus, "proficient save adds proficiency bonus")

	bonus, ok = s.char.SaveBonus(entities.AbilityDexterity)
	s.Require().True(ok)
	s.Assert().Equal(1, bonus, "non-proficient save is bare modifier")
}

func (s *EntitiesTestSuite) TestSkillBonus() {
	bonus, ok := s.char.SkillBonus("athletics")
	s.Require().True(ok)
	s.Assert().Equal(5, bonus)

	bonus, ok = s.char.SkillBonus("stealth")
	s.Require().True(ok)
	s.Assert().Equal(1, bonus)

	_, ok = s.char.SkillBonus("basket weaving")
	s.Assert().False(ok)
}

func (s *EntitiesTestSuite) TestAttackBonusUsesDeclaredAbility() {
	sword, ok := s.char.Weapon("longsword")
	s.Require().True(ok)
	s.Assert().Equal(5, s.char.AttackBonus(sword))

	// Finesse dagger still rolls with its declared ability (dex here),
	// never substituting the higher of str/dex
	dagger, ok := s.char.Weapon("dagger")
	s.Require().True(ok)
	s.Assert().True(dagger.Finesse)
	s.Assert().Equal(3, s.char.AttackBonus(dagger))
}

func (s *EntitiesTestSuite) TestWeaponLookup() {
	w, ok := s.char.Weapon("")
	s.Require().True(ok)
	s.Assert().Equal("longsword", w.ID, "empty id selects first weapon")

	_, ok = s.char.Weapon("glaive")
	s.Assert().False(ok)
}

func (s *EntitiesTestSuite) TestSpellcasting() {
	s.Assert().Equal(entities.DefaultSpellcastingAbility, s.char.SpellcastingAbility())

	wizard := &entities.Character{Class: "Wizard", Level: 1, ProficiencyBonus: 2,
		AbilityScores: entities.AbilityScores{Intelligence: 16}}
	s.Assert().Equal(entities.AbilityIntelligence, wizard.SpellcastingAbility())
	s.Assert().Equal(13, wizard.SpellSaveDC())
}

func (s *EntitiesTestSuite) TestCanCast() {
	s.Assert().True(s.char.CanCast("fire-bolt"), "empty spell lists mean unrestricted")

	s.char.KnownSpells = []string{"magic-missile"}
	s.Assert().True(s.char.CanCast("magic-missile"))
	s.Assert().False(s.char.CanCast("fire-bolt"))
}

func (s *EntitiesTestSuite) TestApplyDamageFloorsAtZero() {
	remaining := s.char.ApplyDamage(5)
	s.Assert().Equal(23, remaining)

	remaining = s.char.ApplyDamage(100)
	s.Assert().Equal(0, remaining)
	s.Assert().Equal(0, s.char.CurrentHP)
}

func (s *EntitiesTestSuite) TestCloneIsIndependent() {
	s.char.CurrentHP = 4
	clone := s.char.Clone()

	s.Assert().Equal(s.char.MaxHP, clone.CurrentHP, "clone resets hp to max")

	clone.ApplyDamage(10)
	clone.Weapons[0].Name = "Rusty Sword"
	clone.SaveProficiencies[0] = "cha"

	s.Assert().Equal(4, s.char.CurrentHP)
	s.Assert().Equal("Longsword", s.char.Weapons[0].Name)
	s.Assert().Equal("str", s.char.SaveProficiencies[0])
}

func (s *EntitiesTestSuite) TestMonsterSaveBonus() {
	monster := &entities.Monster{
		SaveBonuses:   map[entities.Ability]int{entities.AbilityDexterity: 4},
		AbilityScores: map[entities.Ability]int{entities.AbilityDexterity: 8, entities.AbilityWisdom: 14},
	}

	s.Assert().Equal(4, monster.SaveBonus(entities.AbilityDexterity), "explicit bonus wins")
	s.Assert().Equal(2, monster.SaveBonus(entities.AbilityWisdom), "derived from score")
	s.Assert().Equal(0, monster.SaveBonus(entities.AbilityCharisma), "absent everywhere")
}

func (s *EntitiesTestSuite) TestMonsterClone() {
	monster := &entities.Monster{
		Name:      "Goblin",
		MaxHP:     7,
		CurrentHP: 2,
		Actions:   []entities.MonsterAction{{Name: "Scimitar", Description: "Melee Weapon Attack: +4 to hit"}},
	}

	clone := monster.Clone()
	s.Assert().Equal(7, clone.CurrentHP)

	clone.Actions[0].Name = "Bite"
	s.Assert().Equal("Scimitar", monster.Actions[0].Name)
}

func (s *EntitiesTestSuite) TestSessionIsOver() {
	sess := &entities.Session{
		Character: &entities.Character{CurrentHP: 10},
		Monster:   &entities.Monster{CurrentHP: 5},
		Round:     1,
	}
	s.Assert().False(sess.IsOver())

	sess.Monster.CurrentHP = 0
	s.Assert().True(sess.IsOver())
}

func (s *EntitiesTestSuite) TestSessionLog() {
	sess := &entities.Session{}
	s.Assert().Equal("", sess.LastLogLine())

	sess.AppendLog("combat begins")
	sess.AppendLog("Brana attacks")
	s.Assert().Equal("Brana attacks", sess.LastLogLine())
	s.Assert().Len(sess.Log, 2)
}
