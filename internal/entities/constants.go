package entities

// Ability identifies one of the six ability scores by its three-letter key
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// Abilities lists the six abilities in canonical order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AbilityFullNames maps the full English ability names (lower-cased) to
// their three-letter keys. Used when deriving mechanics from rules text.
var AbilityFullNames = map[string]Ability{
	"strength":     AbilityStrength,
	"dexterity":    AbilityDexterity,
	"constitution": AbilityConstitution,
	"intelligence": AbilityIntelligence,
	"wisdom":       AbilityWisdom,
	"charisma":     AbilityCharisma,
}

// IsAbility reports whether key names one of the six abilities
func IsAbility(key string) bool {
	switch Ability(key) {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return true
	default:
		return false
	}
}

// SkillAbilities maps each of the eighteen skills to its governing ability
var SkillAbilities = map[string]Ability{
	"acrobatics":      AbilityDexterity,
	"animal handling": AbilityWisdom,
	"arcana":          AbilityIntelligence,
	"athletics":       AbilityStrength,
	"deception":       AbilityCharisma,
	"history":         AbilityIntelligence,
	"insight":         AbilityWisdom,
	"intimidation":    AbilityCharisma,
	"investigation":   AbilityIntelligence,
	"medicine":        AbilityWisdom,
	"nature":          AbilityIntelligence,
	"perception":      AbilityWisdom,
	"performance":     AbilityCharisma,
	"persuasion":      AbilityCharisma,
	"religion":        AbilityIntelligence,
	"sleight of hand": AbilityDexterity,
	"stealth":         AbilityDexterity,
	"survival":        AbilityWisdom,
}

// ClassSpellcastingAbilities maps character classes to the ability that
// powers their spellcasting. Classes not listed default to wisdom.
var ClassSpellcastingAbilities = map[string]Ability{
	"bard":     AbilityCharisma,
	"cleric":   AbilityWisdom,
	"druid":    AbilityWisdom,
	"paladin":  AbilityCharisma,
	"ranger":   AbilityWisdom,
	"sorcerer": AbilityCharisma,
	"warlock":  AbilityCharisma,
	"wizard":   AbilityIntelligence,
}

// DefaultSpellcastingAbility is used for classes without a table entry
const DefaultSpellcastingAbility = AbilityWisdom
