package mechanics

import (
	"github.com/duelhall/encounter-api/internal/entities"
)

// Kind tags how an action resolves
type Kind string

// Resolution kinds
const (
	// KindAttack resolves as an attack roll against armor class
	KindAttack Kind = "attack"

	// KindSave resolves as a saving throw against a DC
	KindSave Kind = "save"

	// KindNone carries no usable mechanics; callers fall back or narrate
	KindNone Kind = "none"
)

// Mechanics is the minimal numeric contract extracted from one action or
// spell description. Absent fields stay at their zero values with the
// matching Has flag unset.
type Mechanics struct {
	Kind Kind `json:"kind"`

	// Damage dice in canonical notation, "" when none found
	DamageFormula string `json:"damage_formula,omitempty"`
	DamageType    string `json:"damage_type,omitempty"`

	// Save-based fields
	SaveAbility entities.Ability `json:"save_ability,omitempty"`
	DC          int              `json:"dc,omitempty"`
	HasDC       bool             `json:"has_dc,omitempty"`
	HalfOnSave  bool             `json:"half_on_save,omitempty"`

	// Attack-based fields
	AttackBonus    int  `json:"attack_bonus,omitempty"`
	HasAttackBonus bool `json:"has_attack_bonus,omitempty"`
	SpellAttack    bool `json:"spell_attack,omitempty"`
}
