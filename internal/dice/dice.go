// Package dice implements dice notation parsing and rolling for the
// encounter engine. All randomness flows through the Roller interface so
// combat resolution can be made deterministic in tests.
package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/duelhall/encounter-api/internal/errors"
)

// Regex for canonical dice notation like "2d6", "1d20+5", "1d8-1"
var formulaRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Formula is a parsed dice expression: roll Count dice with Sides faces
// and add Modifier to the sum.
type Formula struct {
	Count    int `json:"count"`
	Sides    int `json:"sides"`
	Modifier int `json:"modifier"`
}

// String renders the formula back to canonical notation
func (f Formula) String() string {
	switch {
	case f.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", f.Count, f.Sides, f.Modifier)
	case f.Modifier < 0:
		return fmt.Sprintf("%dd%d%d", f.Count, f.Sides, f.Modifier)
	default:
		return fmt.Sprintf("%dd%d", f.Count, f.Sides)
	}
}

// Parse parses canonical dice notation. Whitespace anywhere in the
// expression is ignored; anything else malformed is an InvalidArgument
// error, never coerced.
func Parse(expr string) (Formula, error) {
	compact := strings.ToLower(strings.Join(strings.Fields(expr), ""))

	matches := formulaRegex.FindStringSubmatch(compact)
	if matches == nil {
		return Formula{}, errors.InvalidArgumentf("invalid dice expression: %q (expected format: XdY or XdY+Z)", expr)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return Formula{}, errors.InvalidArgumentf("invalid dice count in expression: %q", expr)
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return Formula{}, errors.InvalidArgumentf("invalid die size in expression: %q", expr)
	}

	modifier := 0
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return Formula{}, errors.InvalidArgumentf("invalid modifier in expression: %q", expr)
		}
	}

	if count < 1 || sides < 1 {
		return Formula{}, errors.InvalidArgumentf("dice count and size must be positive: %q", expr)
	}

	return Formula{Count: count, Sides: sides, Modifier: modifier}, nil
}

// RollResult holds the outcome of rolling a formula
type RollResult struct {
	// Total is sum(Rolls) + Modifier
	Total int `json:"total"`

	// Rolls lists each individual die result
	Rolls []int `json:"rolls"`

	// Modifier is the flat bonus applied after the dice
	Modifier int `json:"modifier"`
}

// String renders the result as "total (d1,d2,...)" for log lines
func (r RollResult) String() string {
	parts := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		parts[i] = strconv.Itoa(roll)
	}
	return fmt.Sprintf("%d (%s)", r.Total, strings.Join(parts, ","))
}

// RollFormula rolls a parsed formula with the given roller
func RollFormula(roller Roller, f Formula) RollResult {
	rolls := make([]int, f.Count)
	total := f.Modifier
	for i := 0; i < f.Count; i++ {
		roll := roller.Roll(f.Sides)
		rolls[i] = roll
		total += roll
	}

	return RollResult{
		Total:    total,
		Rolls:    rolls,
		Modifier: f.Modifier,
	}
}

// Roll parses and rolls a dice expression in one step
func Roll(roller Roller, expr string) (RollResult, error) {
	f, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return RollFormula(roller, f), nil
}

// D20 rolls a single twenty-sided die
func D20(roller Roller) int {
	return roller.Roll(20)
}

// ModifierForScore converts an ability score to its modifier,
// floor((score-10)/2). Go's integer division truncates toward zero, so
// negative odd deltas need the explicit floor.
func ModifierForScore(score int) int {
	delta := score - 10
	if delta < 0 {
		return -((-delta + 1) / 2)
	}
	return delta / 2
}
