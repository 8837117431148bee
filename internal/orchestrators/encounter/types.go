package encounter

import (
	"github.com/duelhall/encounter-api/internal/entities"
	"github.com/duelhall/encounter-api/internal/mechanics"
)

// RollDetails describes one d20 resolution roll
type RollDetails struct {
	// Die is the raw d20 result
	Die int

	// Bonus is the flat bonus applied to the die
	Bonus int

	// Total is Die + Bonus
	Total int
}

// DamageDetails describes one applied damage roll
type DamageDetails struct {
	Formula string
	Rolls   []int
	Type    string

	// Total is the damage actually applied, after halving and clamping
	Total int
}

// CreateSessionInput defines the request for creating a session
type CreateSessionInput struct {
	// SessionID is optional; one is generated when empty
	SessionID   string
	CharacterID string
	MonsterID   string
}

// CreateSessionOutput defines the response for creating a session
type CreateSessionOutput struct {
	Session *entities.Session
}

// GetSessionInput defines the request for fetching a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for fetching a session
type GetSessionOutput struct {
	Session *entities.Session
}

// ResetSessionInput defines the request for resetting a session to a
// fresh encounter state
type ResetSessionInput struct {
	SessionID string
}

// ResetSessionOutput defines the response for resetting a session
type ResetSessionOutput struct {
	Session *entities.Session
}

// PlayerAttackInput defines the request for a player weapon attack
type PlayerAttackInput struct {
	SessionID string

	// WeaponID is optional; the character's first weapon is used when empty
	WeaponID string
}

// PlayerAttackOutput defines the response for a player weapon attack
type PlayerAttackOutput struct {
	Roll RollDetails
	Hit  bool

	// Damage is set only on a hit
	Damage *DamageDetails

	// TargetHP is the monster's hp after the attack
	TargetHP int
	Round    int
	Log      []string
	Session  *entities.Session
}

// EnemyTurnInput defines the request for resolving the adversary's turn
type EnemyTurnInput struct {
	SessionID string
}

// EnemyTurnOutput defines the response for the adversary's turn
type EnemyTurnOutput struct {
	// ActionName is the selected stat-block action, or "" for the
	// base-stats fallback
	ActionName string

	// Kind tags how the action resolved: attack, save, or none
	Kind mechanics.Kind

	Roll RollDetails

	// Hit is true when the attack landed or the save was failed
	Hit bool

	// Damage is set only when damage was applied
	Damage *DamageDetails

	// TargetHP is the character's hp after the turn
	TargetHP int
	Round    int
	Log      []string
	Session  *entities.Session
}

// SkillCheckInput defines the request for an ability, skill, or save
// check. When more than one selector is given, precedence is
// save > skill > ability.
type SkillCheckInput struct {
	SessionID string
	Ability   string
	Skill     string
	Save      string
	DC        int
}

// SkillCheckOutput defines the response for a check
type SkillCheckOutput struct {
	// Label names what was rolled, e.g. "stealth" or "con save"
	Label string

	// Ability is the governing ability after precedence resolution
	Ability entities.Ability

	Roll    RollDetails
	DC      int
	Success bool
	Log     []string
	Session *entities.Session
}

// AssignDCInput defines the request for assigning a difficulty class
type AssignDCInput struct {
	Label   string
	Context string
}

// AssignDCOutput defines the response for assigning a difficulty class
type AssignDCOutput struct {
	DC int
}

// CastSpellInput defines the request for casting a spell
type CastSpellInput struct {
	SessionID string
	SpellID   string
}

// CastSpellOutput defines the response for casting a spell
type CastSpellOutput struct {
	SpellID   string
	SpellName string

	// Kind tags how the spell resolved: attack, save, or none
	Kind mechanics.Kind

	// Roll is nil for spells with no mechanical effect
	Roll *RollDetails

	// DC is the spell save DC, set for save-based spells
	DC int

	// Hit is true when the attack landed or the enemy failed its save
	Hit bool

	// Damage is set only when damage was applied
	Damage *DamageDetails

	// TargetHP is the monster's hp after the spell
	TargetHP int
	Round    int
	Log      []string
	Session  *entities.Session
}

// RollInitiativeInput defines the request for rolling initiative
type RollInitiativeInput struct {
	SessionID string
}

// RollInitiativeOutput defines the response for rolling initiative
type RollInitiativeOutput struct {
	Roll    RollDetails
	Log     []string
	Session *entities.Session
}

// NarrateInput defines the request for narrating the latest outcome
type NarrateInput struct {
	SessionID string
}

// NarrateOutput defines the response for narration. Narration is empty
// when the collaborator was unavailable; that is not an error.
type NarrateOutput struct {
	Narration string
	Session   *entities.Session
}
