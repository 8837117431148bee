// Package entities defines the combat data model: characters, weapons,
// monsters, spells, and sessions. Catalog entries are immutable templates;
// sessions operate on clones only.
package entities

import (
	"github.com/duelhall/encounter-api/internal/dice"
)

// AbilityScores holds the six ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Score returns the score for the given ability key
func (a AbilityScores) Score(ability Ability) (int, bool) {
	switch ability {
	case AbilityStrength:
		return a.Strength, true
	case AbilityDexterity:
		return a.Dexterity, true
	case AbilityConstitution:
		return a.Constitution, true
	case AbilityIntelligence:
		return a.Intelligence, true
	case AbilityWisdom:
		return a.Wisdom, true
	case AbilityCharisma:
		return a.Charisma, true
	default:
		return 0, false
	}
}

// Weapon is a weapon carried by a character
type Weapon struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AttackAbility Ability `json:"attack_ability"`
	DamageFormula string  `json:"damage_formula"`
	DamageType    string  `json:"damage_type"`

	// Finesse weapons conventionally may use STR or DEX. Attack rolls here
	// still use AttackAbility as declared; the flag is carried for display
	// and for a future rules fix.
	Finesse bool `json:"finesse"`
}

// Character represents a player character
type Character struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Class            string        `json:"class"`
	Level            int           `json:"level"`
	AbilityScores    AbilityScores `json:"ability_scores"`
	ProficiencyBonus int           `json:"proficiency_bonus"`
	ArmorClass       int           `json:"armor_class"`
	MaxHP            int           `json:"max_hp"`
	CurrentHP        int           `json:"current_hp"`
	Weapons          []Weapon      `json:"weapons"`

	// Proficient save abilities and skill names
	SaveProficiencies  []string `json:"save_proficiencies"`
	SkillProficiencies []string `json:"skill_proficiencies"`

	// Spell ids; an empty combined set means unrestricted casting
	KnownSpells    []string `json:"known_spells"`
	PreparedSpells []string `json:"prepared_spells"`
	Cantrips       []string `json:"cantrips"`

	Conditions []string `json:"conditions"`
}

// ProficiencyBonusForLevel derives the proficiency bonus from level,
// 2 + floor((level-1)/4)
func ProficiencyBonusForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}

// AbilityModifier returns the modifier for one of the character's abilities
func (c *Character) AbilityModifier(ability Ability) (int, bool) {
	score, ok := c.AbilityScores.Score(ability)
	if !ok {
		return 0, false
	}
	return dice.ModifierForScore(score), true
}

// SaveBonus returns the character's saving throw bonus for an ability:
// ability modifier, plus proficiency bonus if proficient in that save
func (c *Character) SaveBonus(ability Ability) (int, bool) {
	mod, ok := c.AbilityModifier(ability)
	if !ok {
		return 0, false
	}
	if containsFold(c.SaveProficiencies, string(ability)) {
		mod += c.ProficiencyBonus
	}
	return mod, true
}

// SkillBonus returns the character's bonus for a named skill: governing
// ability modifier, plus proficiency bonus if proficient in that skill
func (c *Character) SkillBonus(skill string) (int, bool) {
	ability, ok := SkillAbilities[normalizeKey(skill)]
	if !ok {
		return 0, false
	}
	mod, _ := c.AbilityModifier(ability)
	if containsFold(c.SkillProficiencies, skill) {
		mod += c.ProficiencyBonus
	}
	return mod, true
}

// AttackBonus returns the character's attack bonus with the given weapon:
// modifier of the weapon's attack ability plus proficiency bonus
func (c *Character) AttackBonus(weapon Weapon) int {
	mod, _ := c.AbilityModifier(weapon.AttackAbility)
	return mod + c.ProficiencyBonus
}

// Weapon finds a weapon by id. An empty id selects the first weapon.
func (c *Character) Weapon(id string) (Weapon, bool) {
	if id == "" {
		if len(c.Weapons) == 0 {
			return Weapon{}, false
		}
		return c.Weapons[0], true
	}
	for _, w := range c.Weapons {
		if w.ID == id {
			return w, true
		}
	}
	return Weapon{}, false
}

// SpellcastingAbility returns the ability powering the character's spells
func (c *Character) SpellcastingAbility() Ability {
	if ability, ok := ClassSpellcastingAbilities[normalizeKey(c.Class)]; ok {
		return ability
	}
	return DefaultSpellcastingAbility
}

// SpellSaveDC is 8 + proficiency bonus + spellcasting ability modifier
func (c *Character) SpellSaveDC() int {
	mod, _ := c.AbilityModifier(c.SpellcastingAbility())
	return 8 + c.ProficiencyBonus + mod
}

// CanCast reports whether a spell id is permitted. An empty combined
// known/prepared/cantrip set means unrestricted.
func (c *Character) CanCast(spellID string) bool {
	if len(c.KnownSpells)+len(c.PreparedSpells)+len(c.Cantrips) == 0 {
		return true
	}
	return containsFold(c.KnownSpells, spellID) ||
		containsFold(c.PreparedSpells, spellID) ||
		containsFold(c.Cantrips, spellID)
}

// ApplyDamage subtracts damage from current hp, floored at 0, and returns
// the remaining hp
func (c *Character) ApplyDamage(damage int) int {
	c.CurrentHP -= damage
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	return c.CurrentHP
}

// Clone returns a deep copy with hp reset to max, for seeding a session
// from a catalog template
func (c *Character) Clone() *Character {
	cp := *c
	cp.CurrentHP = cp.MaxHP
	cp.Weapons = append([]Weapon(nil), c.Weapons...)
	cp.SaveProficiencies = append([]string(nil), c.SaveProficiencies...)
	cp.SkillProficiencies = append([]string(nil), c.SkillProficiencies...)
	cp.KnownSpells = append([]string(nil), c.KnownSpells...)
	cp.PreparedSpells = append([]string(nil), c.PreparedSpells...)
	cp.Cantrips = append([]string(nil), c.Cantrips...)
	cp.Conditions = append([]string(nil), c.Conditions...)
	return &cp
}
