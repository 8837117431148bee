// Package mechanics derives structured combat mechanics from SRD-style
// prose. Extraction is pure and total: it never fails, and text that yields
// nothing usable produces KindNone. Repeated calls on identical text return
// identical results.
package mechanics

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/duelhall/encounter-api/internal/entities"
)

// extractionRule pairs a pattern with the handler that folds its first
// match into the result. Rules run in order; each fires at most once.
type extractionRule struct {
	name    string
	pattern *regexp.Regexp
	apply   func(m *Mechanics, match []string)
}

// The rule set is an explicit prioritized list so individual rules stay
// independently testable. Damage rules are ordered: a parenthesized dice
// expression beats the first standalone token.
var rules = []extractionRule{
	{
		name:    "damage_parenthesized",
		pattern: regexp.MustCompile(`\((\d+\s*d\s*\d+(?:\s*[+-]\s*\d+)?)\)`),
		apply: func(m *Mechanics, match []string) {
			m.DamageFormula = stripSpaces(match[1])
		},
	},
	{
		name:    "damage_standalone",
		pattern: regexp.MustCompile(`(\d+\s*d\s*\d+(?:\s*[+-]\s*\d+)?)`),
		apply: func(m *Mechanics, match []string) {
			if m.DamageFormula == "" {
				m.DamageFormula = stripSpaces(match[1])
			}
		},
	},
	{
		name:    "damage_type",
		pattern: regexp.MustCompile(`(?i)(\w+)\s+damage`),
		apply: func(m *Mechanics, match []string) {
			m.DamageType = strings.ToLower(match[1])
		},
	},
	{
		name:    "save_ability",
		pattern: regexp.MustCompile(`(?i)(strength|dexterity|constitution|intelligence|wisdom|charisma)\s+saving\s+throw`),
		apply: func(m *Mechanics, match []string) {
			m.SaveAbility = entities.AbilityFullNames[strings.ToLower(match[1])]
		},
	},
	{
		name:    "attack_bonus",
		pattern: regexp.MustCompile(`\+(\d+)\s+to\s+hit`),
		apply: func(m *Mechanics, match []string) {
			if n, err := strconv.Atoi(match[1]); err == nil {
				m.AttackBonus = n
				m.HasAttackBonus = true
			}
		},
	},
	{
		name:    "difficulty_class",
		pattern: regexp.MustCompile(`(?i)DC\s+(\d+)`),
		apply: func(m *Mechanics, match []string) {
			if n, err := strconv.Atoi(match[1]); err == nil {
				m.DC = n
				m.HasDC = true
			}
		},
	},
	{
		name:    "half_on_save",
		pattern: regexp.MustCompile(`(?i)half\s+as\s+much\s+damage`),
		apply: func(m *Mechanics, match []string) {
			m.HalfOnSave = true
		},
	},
	{
		name:    "spell_attack",
		pattern: regexp.MustCompile(`(?i)spell\s+attack`),
		apply: func(m *Mechanics, match []string) {
			m.SpellAttack = true
		},
	},
}

// Extract derives mechanics from a monster action or trait description.
// When the text yields both a save and an attack bonus, the save wins:
// save-based resolution takes precedence in enemy turns.
func Extract(text string) Mechanics {
	m := scan(text)

	switch {
	case m.SaveAbility != "":
		m.Kind = KindSave
	case m.HasAttackBonus:
		m.Kind = KindAttack
	default:
		m.Kind = KindNone
	}

	return m
}

// ExtractSpell derives mechanics from a spell, scanning the primary
// description concatenated with any higher-level casting text. A detected
// "spell attack" marks the spell attack-roll-based even if the text also
// mentions a saving throw.
func ExtractSpell(spell entities.Spell) Mechanics {
	text := spell.Description
	if spell.HigherLevels != "" {
		text += " " + spell.HigherLevels
	}

	m := scan(text)

	switch {
	case m.SpellAttack || m.HasAttackBonus:
		m.Kind = KindAttack
	case m.SaveAbility != "":
		m.Kind = KindSave
	default:
		m.Kind = KindNone
	}

	return m
}

// scan runs every extraction rule over the text in order
func scan(text string) Mechanics {
	var m Mechanics
	for _, rule := range rules {
		if match := rule.pattern.FindStringSubmatch(text); match != nil {
			rule.apply(&m, match)
		}
	}
	return m
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
