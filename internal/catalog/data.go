package catalog

import (
	"github.com/duelhall/encounter-api/internal/entities"
)

// Embedded SRD-style templates. Monster actions and spells carry the prose
// their mechanics are derived from; nothing here is hand-structured beyond
// the base stat line.

var srdCharacters = []*entities.Character{
	{
		ID:    "fighter",
		Name:  "Brynn Ironvale",
		Class: "fighter",
		Level: 3,
		AbilityScores: entities.AbilityScores{
			Strength:     16,
			Dexterity:    12,
			Constitution: 14,
			Intelligence: 10,
			Wisdom:       11,
			Charisma:     8,
		},
		ProficiencyBonus: 2,
		ArmorClass:       16,
		MaxHP:            28,
		CurrentHP:        28,
		Weapons: []entities.Weapon{
			{
				ID:            "longsword",
				Name:          "Longsword",
				AttackAbility: entities.AbilityStrength,
				DamageFormula: "1d8+3",
				DamageType:    "slashing",
			},
			{
				ID:            "dagger",
				Name:          "Dagger",
				AttackAbility: entities.AbilityDexterity,
				DamageFormula: "1d4+1",
				DamageType:    "piercing",
				Finesse:       true,
			},
		},
		SaveProficiencies:  []string{"str", "con"},
		SkillProficiencies: []string{"athletics", "intimidation", "perception"},
	},
	{
		ID:    "wizard",
		Name:  "Elara Voss",
		Class: "wizard",
		Level: 3,
		AbilityScores: entities.AbilityScores{
			Strength:     8,
			Dexterity:    14,
			Constitution: 12,
			Intelligence: 16,
			Wisdom:       10,
			Charisma:     11,
		},
		ProficiencyBonus: 2,
		ArmorClass:       12,
		MaxHP:            17,
		CurrentHP:        17,
		Weapons: []entities.Weapon{
			{
				ID:            "quarterstaff",
				Name:          "Quarterstaff",
				AttackAbility: entities.AbilityStrength,
				DamageFormula: "1d6-1",
				DamageType:    "bludgeoning",
			},
		},
		SaveProficiencies:  []string{"int", "wis"},
		SkillProficiencies: []string{"arcana", "history", "investigation"},
		Cantrips:           []string{"fire-bolt", "light"},
		PreparedSpells:     []string{"magic-missile", "burning-hands"},
	},
	{
		ID:    "cleric",
		Name:  "Mikal Dawnward",
		Class: "cleric",
		Level: 3,
		AbilityScores: entities.AbilityScores{
			Strength:     14,
			Dexterity:    10,
			Constitution: 14,
			Intelligence: 10,
			Wisdom:       16,
			Charisma:     12,
		},
		ProficiencyBonus: 2,
		ArmorClass:       18,
		MaxHP:            24,
		CurrentHP:        24,
		Weapons: []entities.Weapon{
			{
				ID:            "mace",
				Name:          "Mace",
				AttackAbility: entities.AbilityStrength,
				DamageFormula: "1d6+2",
				DamageType:    "bludgeoning",
			},
		},
		SaveProficiencies:  []string{"wis", "cha"},
		SkillProficiencies: []string{"insight", "medicine", "religion"},
		Cantrips:           []string{"sacred-flame"},
		PreparedSpells:     []string{"guiding-bolt", "cure-wounds"},
	},
}

var srdMonsters = []*entities.Monster{
	{
		ID:            "goblin",
		Name:          "Goblin",
		ArmorClass:    15,
		MaxHP:         7,
		CurrentHP:     7,
		AttackBonus:   4,
		DamageFormula: "1d6+2",
		DamageType:    "slashing",
		AbilityScores: map[entities.Ability]int{
			entities.AbilityStrength:  8,
			entities.AbilityDexterity: 14,
			entities.AbilityWisdom:    8,
		},
		Traits: []entities.MonsterAction{
			{
				Name:        "Nimble Escape",
				Description: "The goblin can take the Disengage or Hide action as a bonus action on each of its turns.",
			},
		},
		Actions: []entities.MonsterAction{
			{
				Name:        "Scimitar",
				Description: "Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6+2) slashing damage.",
			},
			{
				Name:        "Shortbow",
				Description: "Ranged Weapon Attack: +4 to hit, range 80/320 ft., one target. Hit: 5 (1d6+2) piercing damage.",
			},
		},
	},
	{
		ID:            "orc",
		Name:          "Orc",
		ArmorClass:    13,
		MaxHP:         15,
		CurrentHP:     15,
		AttackBonus:   5,
		DamageFormula: "1d12+3",
		DamageType:    "slashing",
		AbilityScores: map[entities.Ability]int{
			entities.AbilityStrength:  16,
			entities.AbilityDexterity: 12,
			entities.AbilityWisdom:    11,
		},
		Actions: []entities.MonsterAction{
			{
				Name:        "Greataxe",
				Description: "Melee Weapon Attack: +5 to hit, reach 5 ft., one target. Hit: 9 (1d12+3) slashing damage.",
			},
			{
				Name:        "Javelin",
				Description: "Melee or Ranged Weapon Attack: +5 to hit, reach 5 ft. or range 30/120 ft., one target. Hit: 6 (1d6+3) piercing damage.",
			},
		},
	},
	{
		ID:            "giant-spider",
		Name:          "Giant Spider",
		ArmorClass:    14,
		MaxHP:         26,
		CurrentHP:     26,
		AttackBonus:   5,
		DamageFormula: "1d8+3",
		DamageType:    "piercing",
		SaveBonuses: map[entities.Ability]int{
			entities.AbilityDexterity: 3,
		},
		AbilityScores: map[entities.Ability]int{
			entities.AbilityStrength:  14,
			entities.AbilityDexterity: 16,
			entities.AbilityWisdom:    11,
		},
		Actions: []entities.MonsterAction{
			{
				Name: "Bite",
				Description: "Melee Weapon Attack: +5 to hit, reach 5 ft., one creature. Hit: 7 (1d8+3) piercing damage, " +
					"and the target must make a DC 11 Constitution saving throw, taking 9 (2d8) poison damage on a " +
					"failed save, or half as much damage on a successful one.",
			},
			{
				Name: "Web",
				Description: "Ranged Weapon Attack: +5 to hit, range 30/60 ft., one creature. Hit: The target is " +
					"restrained by webbing.",
			},
		},
	},
	{
		ID:            "ember-drake",
		Name:          "Ember Drake",
		ArmorClass:    17,
		MaxHP:         38,
		CurrentHP:     38,
		AttackBonus:   6,
		DamageFormula: "2d6+3",
		DamageType:    "piercing",
		SaveBonuses: map[entities.Ability]int{
			entities.AbilityDexterity:    4,
			entities.AbilityConstitution: 5,
		},
		AbilityScores: map[entities.Ability]int{
			entities.AbilityStrength:     17,
			entities.AbilityDexterity:    12,
			entities.AbilityConstitution: 16,
			entities.AbilityWisdom:       11,
		},
		Actions: []entities.MonsterAction{
			{
				Name:        "Multiattack",
				Description: "The drake makes two attacks: one with its bite and one with its claws.",
			},
			{
				Name:        "Bite",
				Description: "Melee Weapon Attack: +6 to hit, reach 5 ft., one target. Hit: 10 (2d6+3) piercing damage.",
			},
			{
				Name: "Fire Breath",
				Description: "The drake exhales fire in a 15-foot cone. Each creature in that area must make a " +
					"DC 13 Dexterity saving throw, taking 10 (3d6) fire damage on a failed save, or half as much " +
					"damage on a successful one.",
			},
		},
		LegendaryActions: []entities.MonsterAction{
			{
				Name:        "Tail Sweep",
				Description: "Melee Weapon Attack: +6 to hit, reach 10 ft., one target. Hit: 8 (1d8+3) bludgeoning damage.",
			},
		},
	},
	{
		ID:            "skeleton",
		Name:          "Skeleton",
		ArmorClass:    13,
		MaxHP:         13,
		CurrentHP:     13,
		AttackBonus:   4,
		DamageFormula: "1d6+2",
		DamageType:    "piercing",
		AbilityScores: map[entities.Ability]int{
			entities.AbilityStrength:  10,
			entities.AbilityDexterity: 14,
			entities.AbilityWisdom:    8,
		},
		Actions: []entities.MonsterAction{
			{
				Name:        "Shortsword",
				Description: "Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6+2) piercing damage.",
			},
		},
	},
}

var srdSpells = []entities.Spell{
	{
		ID:   "fire-bolt",
		Name: "Fire Bolt",
		Description: "You hurl a mote of fire at a creature or object within range. Make a ranged spell attack " +
			"against the target. On a hit, the target takes 1d10 fire damage.",
		HigherLevels: "This spell's damage increases by 1d10 when you reach 5th level.",
	},
	{
		ID:   "sacred-flame",
		Name: "Sacred Flame",
		Description: "Flame-like radiance descends on a creature that you can see within range. The target must " +
			"succeed on a Dexterity saving throw or take 1d8 radiant damage. The target gains no benefit from " +
			"cover for this saving throw.",
	},
	{
		ID:   "guiding-bolt",
		Name: "Guiding Bolt",
		Description: "A flash of light streaks toward a creature of your choice. Make a ranged spell attack " +
			"against the target. On a hit, the target takes 4d6 radiant damage, and the next attack roll made " +
			"against this target before the end of your next turn has advantage.",
		HigherLevels: "When you cast this spell using a spell slot of 2nd level or higher, the damage increases " +
			"by 1d6 for each slot level above 1st.",
	},
	{
		ID:   "burning-hands",
		Name: "Burning Hands",
		Description: "A thin sheet of flames shoots forth from your outstretched fingertips. Each creature in a " +
			"15-foot cone must make a Dexterity saving throw. A creature takes 3d6 fire damage on a failed save, " +
			"or half as much damage on a successful one.",
		HigherLevels: "When you cast this spell using a spell slot of 2nd level or higher, the damage increases " +
			"by 1d6 for each slot level above 1st.",
	},
	{
		ID:   "magic-missile",
		Name: "Magic Missile",
		Description: "You create three glowing darts of magical force. Each dart hits a creature of your choice " +
			"that you can see within range. A dart deals 1d4 + 1 force damage to its target. The darts all strike " +
			"simultaneously.",
	},
	{
		ID:   "cure-wounds",
		Name: "Cure Wounds",
		Description: "A creature you touch regains a number of hit points equal to 1d8 + your spellcasting " +
			"ability modifier. This spell has no effect on undead or constructs.",
	},
	{
		ID:   "light",
		Name: "Light",
		Description: "You touch one object that is no larger than 10 feet in any dimension. Until the spell ends, " +
			"the object sheds bright light in a 20-foot radius and dim light for an additional 20 feet.",
	},
}
