package encounter

import (
	"strings"

	"github.com/duelhall/encounter-api/internal/dice"
	"github.com/duelhall/encounter-api/internal/entities"
	"github.com/duelhall/encounter-api/internal/mechanics"
)

// enemyAction is one candidate resolution for the adversary's turn
type enemyAction struct {
	// Name is the stat-block action name, or "" for the fallback
	Name string

	// Mechanics is the extracted contract; zero-valued for the fallback
	Mechanics mechanics.Mechanics

	// Fallback marks the monster's base attack/damage fields
	Fallback bool
}

// selectEnemyAction picks the adversary's action for this turn. Actions
// named "multiattack" and actions without descriptive text are discarded;
// the rest are extracted and kept only if they yield an attack bonus or a
// save ability. One usable action is chosen uniformly at random; with no
// usable action the monster's base attack is used.
func selectEnemyAction(monster *entities.Monster, roller dice.Roller) enemyAction {
	var usable []enemyAction

	for _, action := range monster.Actions {
		if strings.EqualFold(action.Name, "multiattack") {
			continue
		}
		if strings.TrimSpace(action.Description) == "" {
			continue
		}

		m := mechanics.Extract(action.Description)
		if m.Kind == mechanics.KindNone {
			continue
		}

		usable = append(usable, enemyAction{
			Name:      action.Name,
			Mechanics: m,
		})
	}

	if len(usable) == 0 {
		return enemyAction{Fallback: true}
	}

	return usable[roller.Roll(len(usable))-1]
}
