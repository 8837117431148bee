package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duelhall/encounter-api/internal/dice"
	"github.com/duelhall/encounter-api/internal/entities"
	"github.com/duelhall/encounter-api/internal/mechanics"
)

func TestSelectEnemyAction_SkipsMultiattackAndEmpty(t *testing.T) {
	monster := &entities.Monster{
		Name: "Ember Drake",
		Actions: []entities.MonsterAction{
			{Name: "Multiattack", Description: "The drake makes two attacks."},
			{Name: "Tail", Description: "   "},
			{Name: "Bite", Description: "Melee Weapon Attack: +5 to hit. Hit: 7 (1d10+2) piercing damage."},
		},
	}

	roller := dice.NewMockRoller()
	roller.SetNextRoll(1)

	action := selectEnemyAction(monster, roller)
	require.False(t, action.Fallback)
	assert.Equal(t, "Bite", action.Name)
	assert.Equal(t, mechanics.KindAttack, action.Mechanics.Kind)
	assert.Equal(t, 5, action.Mechanics.AttackBonus)
	assert.Equal(t, "1d10+2", action.Mechanics.DamageFormula)
}

func TestSelectEnemyAction_DiscardsActionsWithoutMechanics(t *testing.T) {
	monster := &entities.Monster{
		Name: "Goblin",
		Actions: []entities.MonsterAction{
			{Name: "Nimble Escape", Description: "The goblin can take the Disengage or Hide action as a bonus action."},
		},
	}

	roller := dice.NewMockRoller()

	action := selectEnemyAction(monster, roller)
	assert.True(t, action.Fallback)
	assert.Empty(t, action.Name)
}

func TestSelectEnemyAction_FallbackWhenNoActions(t *testing.T) {
	monster := &entities.Monster{Name: "Orc"}

	action := selectEnemyAction(monster, dice.NewMockRoller())
	assert.True(t, action.Fallback)
	assert.Equal(t, mechanics.KindNone, action.Mechanics.Kind)
}

func TestSelectEnemyAction_RollSelectsAmongUsable(t *testing.T) {
	monster := &entities.Monster{
		Name: "Ember Drake",
		Actions: []entities.MonsterAction{
			{Name: "Bite", Description: "Melee Weapon Attack: +5 to hit. Hit: 7 (1d10+2) piercing damage."},
			{Name: "Fire Breath", Description: "Each creature must make a DC 13 Dexterity saving throw, taking 10 (3d6) fire damage on a failed save, or half as much damage on a successful one."},
		},
	}

	roller := dice.NewMockRoller()
	roller.SetNextRoll(2)

	action := selectEnemyAction(monster, roller)
	require.False(t, action.Fallback)
	assert.Equal(t, "Fire Breath", action.Name)
	assert.Equal(t, mechanics.KindSave, action.Mechanics.Kind)
	assert.Equal(t, entities.AbilityDexterity, action.Mechanics.SaveAbility)
	assert.Equal(t, 13, action.Mechanics.DC)
	assert.True(t, action.Mechanics.HalfOnSave)

	roller.SetNextRoll(1)
	action = selectEnemyAction(monster, roller)
	require.False(t, action.Fallback)
	assert.Equal(t, "Bite", action.Name)
}
