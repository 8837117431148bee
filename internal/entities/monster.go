package entities

import (
	"github.com/duelhall/encounter-api/internal/dice"
)

// MonsterAction is one entry from a monster's stat block: a name plus the
// SRD-style prose its mechanics are derived from
type MonsterAction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Monster represents an adversary
type Monster struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ArmorClass int    `json:"armor_class"`
	MaxHP      int    `json:"max_hp"`
	CurrentHP  int    `json:"current_hp"`

	// Base attack used when no action yields usable mechanics
	AttackBonus   int    `json:"attack_bonus"`
	DamageFormula string `json:"damage_formula"`
	DamageType    string `json:"damage_type"`

	// Explicit per-ability save bonuses from the stat block, if any
	SaveBonuses map[Ability]int `json:"save_bonuses,omitempty"`

	// Ability scores, if the stat block provides them
	AbilityScores map[Ability]int `json:"ability_scores,omitempty"`

	Traits          []MonsterAction `json:"traits,omitempty"`
	Actions         []MonsterAction `json:"actions,omitempty"`
	LegendaryActions []MonsterAction `json:"legendary_actions,omitempty"`
}

// SaveBonus returns the monster's saving throw bonus for an ability: the
// explicit stat-block bonus when present, else the modifier derived from
// its ability score, else 0
func (m *Monster) SaveBonus(ability Ability) int {
	if bonus, ok := m.SaveBonuses[ability]; ok {
		return bonus
	}
	if score, ok := m.AbilityScores[ability]; ok {
		return dice.ModifierForScore(score)
	}
	return 0
}

// ApplyDamage subtracts damage from current hp, floored at 0, and returns
// the remaining hp
func (m *Monster) ApplyDamage(damage int) int {
	m.CurrentHP -= damage
	if m.CurrentHP < 0 {
		m.CurrentHP = 0
	}
	return m.CurrentHP
}

// Clone returns a deep copy with hp reset to max, for seeding a session
// from a catalog template
func (m *Monster) Clone() *Monster {
	cp := *m
	cp.CurrentHP = cp.MaxHP
	if m.SaveBonuses != nil {
		cp.SaveBonuses = make(map[Ability]int, len(m.SaveBonuses))
		for k, v := range m.SaveBonuses {
			cp.SaveBonuses[k] = v
		}
	}
	if m.AbilityScores != nil {
		cp.AbilityScores = make(map[Ability]int, len(m.AbilityScores))
		for k, v := range m.AbilityScores {
			cp.AbilityScores[k] = v
		}
	}
	cp.Traits = append([]MonsterAction(nil), m.Traits...)
	cp.Actions = append([]MonsterAction(nil), m.Actions...)
	cp.LegendaryActions = append([]MonsterAction(nil), m.LegendaryActions...)
	return &cp
}
