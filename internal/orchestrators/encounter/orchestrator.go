// Package encounter implements the combat session state machine: it
// orchestrates transitions, rolls dice, mutates hp, and appends the
// combat log, persisting through the session repository.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/duelhall/encounter-api/internal/orchestrators/encounter Service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/duelhall/encounter-api/internal/catalog"
	"github.com/duelhall/encounter-api/internal/collaborators/difficulty"
	"github.com/duelhall/encounter-api/internal/collaborators/narration"
	"github.com/duelhall/encounter-api/internal/dice"
	"github.com/duelhall/encounter-api/internal/entities"
	"github.com/duelhall/encounter-api/internal/errors"
	"github.com/duelhall/encounter-api/internal/mechanics"
	"github.com/duelhall/encounter-api/internal/pkg/clock"
	"github.com/duelhall/encounter-api/internal/pkg/idgen"
	sessionrepo "github.com/duelhall/encounter-api/internal/repositories/session"
)

// defaultEnemySaveDC applies when an enemy save action text carries no DC
const defaultEnemySaveDC = 10

// Service defines the interface for combat resolution operations
type Service interface {
	// CreateSession clones catalog templates into a fresh session
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession returns the current session snapshot
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ResetSession restores a session to a fresh encounter state
	ResetSession(ctx context.Context, input *ResetSessionInput) (*ResetSessionOutput, error)

	// PlayerAttack resolves a weapon attack against the adversary
	PlayerAttack(ctx context.Context, input *PlayerAttackInput) (*PlayerAttackOutput, error)

	// EnemyTurn resolves the adversary's turn and advances the round
	EnemyTurn(ctx context.Context, input *EnemyTurnInput) (*EnemyTurnOutput, error)

	// SkillCheck resolves an ability, skill, or save check against a DC
	SkillCheck(ctx context.Context, input *SkillCheckInput) (*SkillCheckOutput, error)

	// CastSpell resolves a spell from the catalog against the adversary
	CastSpell(ctx context.Context, input *CastSpellInput) (*CastSpellOutput, error)

	// RollInitiative rolls initiative for the character; log-only
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error)

	// AssignDC assigns a difficulty class for a labeled check
	AssignDC(ctx context.Context, input *AssignDCInput) (*AssignDCOutput, error)

	// Narrate asks the narration collaborator to describe the latest
	// outcome; best-effort
	Narrate(ctx context.Context, input *NarrateInput) (*NarrateOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	SessionRepo sessionrepo.Repository
	Catalog     catalog.Catalog
	Roller      dice.Roller
	IDGenerator idgen.Generator

	// Narrator and DCChooser are optional; absent collaborators degrade
	// to no narration and the default DC
	Narrator  narration.Narrator
	DCChooser difficulty.Chooser

	// Clock is optional; a real clock is used when nil
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo sessionrepo.Repository
	catalog     catalog.Catalog
	roller      dice.Roller
	idGen       idgen.Generator
	narrator    narration.Narrator
	dcChooser   difficulty.Chooser
	clock       clock.Clock

	// Per-session mutexes serializing transitions on one session id so
	// two concurrent transitions cannot both apply damage to the same
	// pre-mutation snapshot
	locks sync.Map
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new encounter orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		catalog:     cfg.Catalog,
		roller:      cfg.Roller,
		idGen:       cfg.IDGenerator,
		narrator:    cfg.Narrator,
		dcChooser:   cfg.DCChooser,
		clock:       clk,
	}, nil
}

// lockSession acquires the per-session mutex and returns its unlock func
func (o *orchestrator) lockSession(id string) func() {
	mu, _ := o.locks.LoadOrStore(id, &sync.Mutex{})
	mutex := mu.(*sync.Mutex)
	mutex.Lock()
	return mutex.Unlock
}

// loadSession fetches a session by id
func (o *orchestrator) loadSession(ctx context.Context, id string) (*entities.Session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	output, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	return output.Session, nil
}

// loadActiveSession fetches a session and rejects transitions on a
// finished encounter
func (o *orchestrator) loadActiveSession(ctx context.Context, id string) (*entities.Session, error) {
	sess, err := o.loadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.IsOver() {
		return nil, errors.FailedPreconditionf("combat is over in session %s", id)
	}
	return sess, nil
}

// saveSession stamps and persists the session snapshot
func (o *orchestrator) saveSession(ctx context.Context, sess *entities.Session) error {
	sess.UpdatedAt = o.clock.Now()
	if _, err := o.sessionRepo.Save(ctx, sessionrepo.SaveInput{Session: sess}); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	return nil
}

// CreateSession clones catalog templates into a fresh session
func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.catalog.Character(input.CharacterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	monster, err := o.catalog.Monster(input.MonsterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	id := input.SessionID
	if id == "" {
		id = o.idGen.Generate()
	}

	unlock := o.lockSession(id)
	defer unlock()

	sess := &entities.Session{
		ID:        id,
		Character: char,
		Monster:   monster,
		Round:     1,
		CreatedAt: o.clock.Now(),
	}
	sess.AppendLog(openingLine(char, monster))

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	return &CreateSessionOutput{Session: sess}, nil
}

// GetSession returns the current session snapshot
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Session: sess}, nil
}

// ResetSession restores a session to a fresh encounter state: hp back to
// max, round 1, and a single opening log line
func (o *orchestrator) ResetSession(ctx context.Context, input *ResetSessionInput) (*ResetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.lockSession(input.SessionID)
	defer unlock()

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.Character.CurrentHP = sess.Character.MaxHP
	sess.Monster.CurrentHP = sess.Monster.MaxHP
	sess.Round = 1
	sess.Log = []string{openingLine(sess.Character, sess.Monster)}
	sess.Narration = nil

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	return &ResetSessionOutput{Session: sess}, nil
}

// PlayerAttack resolves a weapon attack: 1d20 + ability modifier +
// proficiency bonus vs enemy AC; weapon damage on hit. Does not advance
// the round.
func (o *orchestrator) PlayerAttack(ctx context.Context, input *PlayerAttackInput) (*PlayerAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.lockSession(input.SessionID)
	defer unlock()

	sess, err := o.loadActiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	char, monster := sess.Character, sess.Monster

	weapon, ok := char.Weapon(input.WeaponID)
	if !ok {
		return nil, errors.NotFoundf("weapon not found: %s", input.WeaponID)
	}

	// Resolve every roll before mutating the session so a malformed
	// damage formula surfaces with the state untouched
	bonus := char.AttackBonus(weapon)
	die := dice.D20(o.roller)
	total := die + bonus
	hit := total >= monster.ArmorClass

	var damage *DamageDetails
	if hit {
		result, rollErr := dice.Roll(o.roller, weapon.DamageFormula)
		if rollErr != nil {
			return nil, errors.Wrapf(rollErr, "invalid damage formula on weapon %s", weapon.ID)
		}
		damage = &DamageDetails{
			Formula: weapon.DamageFormula,
			Rolls:   result.Rolls,
			Type:    weapon.DamageType,
			Total:   clampDamage(result.Total),
		}
	}

	sess.AppendLog(attackLine(char.Name, monster.Name, weapon.Name, die, bonus, total, monster.ArmorClass, hit))
	if hit {
		remaining := monster.ApplyDamage(damage.Total)
		sess.AppendLog(damageLine(monster.Name, damage, remaining))
	}

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	return &PlayerAttackOutput{
		Roll:     RollDetails{Die: die, Bonus: bonus, Total: total},
		Hit:      hit,
		Damage:   damage,
		TargetHP: monster.CurrentHP,
		Round:    sess.Round,
		Log:      sess.Log,
		Session:  sess,
	}, nil
}

// EnemyTurn resolves the adversary's turn per the action selector and
// always advances the round by exactly one, the only transition that does
func (o *orchestrator) EnemyTurn(ctx context.Context, input *EnemyTurnInput) (*EnemyTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.lockSession(input.SessionID)
	defer unlock()

	sess, err := o.loadActiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	char, monster := sess.Character, sess.Monster
	action := selectEnemyAction(monster, o.roller)

	output := &EnemyTurnOutput{
		ActionName: action.Name,
		Kind:       mechanics.KindNone,
	}

	switch {
	case !action.Fallback && action.Mechanics.Kind == mechanics.KindSave:
		m := action.Mechanics
		output.Kind = mechanics.KindSave

		dc := defaultEnemySaveDC
		if m.HasDC {
			dc = m.DC
		}

		saveBonus, _ := char.SaveBonus(m.SaveAbility)
		die := dice.D20(o.roller)
		total := die + saveBonus
		success := total >= dc
		output.Roll = RollDetails{Die: die, Bonus: saveBonus, Total: total}
		output.Hit = !success

		damage, rollErr := o.rollSaveDamage(m, success)
		if rollErr != nil {
			return nil, rollErr
		}

		sess.AppendLog(saveLine(char.Name, m.SaveAbility, action.Name, die, saveBonus, total, dc, success))
		if damage != nil && damage.Total > 0 {
			remaining := char.ApplyDamage(damage.Total)
			sess.AppendLog(damageLine(char.Name, damage, remaining))
			output.Damage = damage
		}

	case !action.Fallback && action.Mechanics.Kind == mechanics.KindAttack:
		m := action.Mechanics
		output.Kind = mechanics.KindAttack

		bonus := monster.AttackBonus
		if m.HasAttackBonus {
			bonus = m.AttackBonus
		}
		formula, damageType := monster.DamageFormula, monster.DamageType
		if m.DamageFormula != "" {
			formula, damageType = m.DamageFormula, m.DamageType
		}

		if err := o.resolveEnemyAttack(sess, action.Name, bonus, formula, damageType, output); err != nil {
			return nil, err
		}

	default:
		// Pure fallback: plain roll with the monster's base stats. The
		// base damage type applies even if the text hinted otherwise.
		if err := o.resolveEnemyAttack(sess, "", monster.AttackBonus, monster.DamageFormula, monster.DamageType, output); err != nil {
			return nil, err
		}
	}

	sess.Round++

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	output.TargetHP = char.CurrentHP
	output.Round = sess.Round
	output.Log = sess.Log
	output.Session = sess
	return output, nil
}

// resolveEnemyAttack rolls an enemy attack against the character's AC and
// applies damage on a hit
func (o *orchestrator) resolveEnemyAttack(sess *entities.Session, actionName string, bonus int, formula, damageType string, output *EnemyTurnOutput) error {
	char, monster := sess.Character, sess.Monster

	die := dice.D20(o.roller)
	total := die + bonus
	hit := total >= char.ArmorClass
	output.Roll = RollDetails{Die: die, Bonus: bonus, Total: total}
	output.Hit = hit

	var damage *DamageDetails
	if hit && formula != "" {
		result, err := dice.Roll(o.roller, formula)
		if err != nil {
			return errors.Wrapf(err, "invalid damage formula on monster %s", monster.ID)
		}
		damage = &DamageDetails{
			Formula: formula,
			Rolls:   result.Rolls,
			Type:    damageType,
			Total:   clampDamage(result.Total),
		}
	}

	sess.AppendLog(attackLine(monster.Name, char.Name, actionName, die, bonus, total, char.ArmorClass, hit))
	if damage != nil && damage.Total > 0 {
		remaining := char.ApplyDamage(damage.Total)
		sess.AppendLog(damageLine(char.Name, damage, remaining))
		output.Damage = damage
	}

	return nil
}

// rollSaveDamage rolls save-based damage and adjusts it for the save
// outcome: full on a failure, floor(half) on a success with half-on-save,
// zero otherwise
func (o *orchestrator) rollSaveDamage(m mechanics.Mechanics, saveSucceeded bool) (*DamageDetails, error) {
	if m.DamageFormula == "" {
		return nil, nil
	}

	result, err := dice.Roll(o.roller, m.DamageFormula)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid extracted damage formula %q", m.DamageFormula)
	}

	applied := clampDamage(result.Total)
	if saveSucceeded {
		if m.HalfOnSave {
			applied /= 2
		} else {
			applied = 0
		}
	}

	return &DamageDetails{
		Formula: m.DamageFormula,
		Rolls:   result.Rolls,
		Type:    m.DamageType,
		Total:   applied,
	}, nil
}

// SkillCheck resolves a check with precedence save > skill > ability:
// 1d20 + governing ability modifier + proficiency bonus where proficient.
// No hp change; does not advance the round.
func (o *orchestrator) SkillCheck(ctx context.Context, input *SkillCheckInput) (*SkillCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.lockSession(input.SessionID)
	defer unlock()

	sess, err := o.loadActiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	char := sess.Character

	var (
		label   string
		ability entities.Ability
		bonus   int
	)

	switch {
	case input.Save != "":
		ability, err = parseAbility(input.Save)
		if err != nil {
			return nil, err
		}
		bonus, _ = char.SaveBonus(ability)
		label = string(ability) + " save"

	case input.Skill != "":
		skill := strings.ToLower(strings.TrimSpace(input.Skill))
		var ok bool
		bonus, ok = char.SkillBonus(skill)
		if !ok {
			return nil, errors.NotFoundf("unknown skill: %s", input.Skill)
		}
		ability = entities.SkillAbilities[skill]
		label = skill

	case input.Ability != "":
		ability, err = parseAbility(input.Ability)
		if err != nil {
			return nil, err
		}
		mod, _ := char.AbilityModifier(ability)
		bonus = mod
		label = string(ability)

	default:
		return nil, errors.InvalidArgument("one of ability, skill, or save is required")
	}

	die := dice.D20(o.roller)
	total := die + bonus
	success := total >= input.DC

	sess.AppendLog(checkLine(char.Name, label, die, bonus, total, input.DC, success))

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	return &SkillCheckOutput{
		Label:   label,
		Ability: ability,
		Roll:    RollDetails{Die: die, Bonus: bonus, Total: total},
		DC:      input.DC,
		Success: success,
		Log:     sess.Log,
		Session: sess,
	}, nil
}

// AssignDC assigns a difficulty class for a labeled check. An empty
// context returns the fixed default without consulting the collaborator;
// collaborator failures and non-canonical answers also fall back.
func (o *orchestrator) AssignDC(ctx context.Context, input *AssignDCInput) (*AssignDCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if strings.TrimSpace(input.Context) == "" {
		return &AssignDCOutput{DC: difficulty.DefaultDC}, nil
	}

	if o.dcChooser == nil {
		return &AssignDCOutput{DC: difficulty.DefaultDC}, nil
	}

	dc, err := o.dcChooser.ChooseDC(ctx, input.Label, input.Context)
	if err != nil || !difficulty.IsCanonical(dc) {
		slog.Warn("DC collaborator failed, using default",
			"label", input.Label,
			"error", err)
		return &AssignDCOutput{DC: difficulty.DefaultDC}, nil
	}

	return &AssignDCOutput{DC: dc}, nil
}

// CastSpell resolves a catalog spell. Attack spells roll 1d20 + casting
// modifier + proficiency vs enemy AC; save spells roll the enemy's save
// against the character's spell save DC; spells with no mechanics only
// log. Does not advance the round.
func (o *orchestrator) CastSpell(ctx context.Context, input *CastSpellInput) (*CastSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.lockSession(input.SessionID)
	defer unlock()

	sess, err := o.loadActiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	char, monster := sess.Character, sess.Monster

	spell, err := o.catalog.Spell(input.SpellID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to cast spell")
	}

	if !char.CanCast(spell.ID) {
		return nil, errors.NotFoundf("spell not permitted to %s: %s", char.Name, spell.ID)
	}

	m := mechanics.ExtractSpell(spell)
	castingMod, _ := char.AbilityModifier(char.SpellcastingAbility())

	output := &CastSpellOutput{
		SpellID:   spell.ID,
		SpellName: spell.Name,
		Kind:      m.Kind,
	}

	switch m.Kind {
	case mechanics.KindAttack:
		bonus := castingMod + char.ProficiencyBonus
		die := dice.D20(o.roller)
		total := die + bonus
		hit := total >= monster.ArmorClass
		output.Roll = &RollDetails{Die: die, Bonus: bonus, Total: total}
		output.Hit = hit

		var damage *DamageDetails
		if hit && m.DamageFormula != "" {
			result, rollErr := dice.Roll(o.roller, m.DamageFormula)
			if rollErr != nil {
				return nil, errors.Wrapf(rollErr, "invalid extracted damage formula %q", m.DamageFormula)
			}
			damage = &DamageDetails{
				Formula: m.DamageFormula,
				Rolls:   result.Rolls,
				Type:    m.DamageType,
				Total:   clampDamage(result.Total),
			}
		}

		sess.AppendLog(spellAttackLine(char.Name, spell.Name, monster.Name, die, bonus, total, monster.ArmorClass, hit))
		if damage != nil && damage.Total > 0 {
			remaining := monster.ApplyDamage(damage.Total)
			sess.AppendLog(damageLine(monster.Name, damage, remaining))
			output.Damage = damage
		}

	case mechanics.KindSave:
		dc := char.SpellSaveDC()
		saveBonus := monster.SaveBonus(m.SaveAbility)
		die := dice.D20(o.roller)
		total := die + saveBonus
		success := total >= dc
		output.Roll = &RollDetails{Die: die, Bonus: saveBonus, Total: total}
		output.DC = dc
		output.Hit = !success

		damage, rollErr := o.rollSaveDamage(m, success)
		if rollErr != nil {
			return nil, rollErr
		}

		sess.AppendLog(saveLine(monster.Name, m.SaveAbility, spell.Name, die, saveBonus, total, dc, success))
		if damage != nil && damage.Total > 0 {
			remaining := monster.ApplyDamage(damage.Total)
			sess.AppendLog(damageLine(monster.Name, damage, remaining))
			output.Damage = damage
		}

	case mechanics.KindNone:
		// No roll; pure narrative effect
		sess.AppendLog(fmt.Sprintf("%s casts %s - no mechanical effect", char.Name, spell.Name))
	}

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	output.TargetHP = monster.CurrentHP
	output.Round = sess.Round
	output.Log = sess.Log
	output.Session = sess
	return output, nil
}

// RollInitiative rolls 1d20 + dex modifier for the character; log-only
func (o *orchestrator) RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.lockSession(input.SessionID)
	defer unlock()

	sess, err := o.loadActiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	char := sess.Character
	mod, _ := char.AbilityModifier(entities.AbilityDexterity)
	die := dice.D20(o.roller)
	total := die + mod

	sess.AppendLog(fmt.Sprintf("%s rolls initiative: %s", char.Name, d20Part(die, mod, total)))

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	return &RollInitiativeOutput{
		Roll:    RollDetails{Die: die, Bonus: mod, Total: total},
		Log:     sess.Log,
		Session: sess,
	}, nil
}

// Narrate asks the narration collaborator to describe the most recent log
// line. Collaborator failures are swallowed: the caller simply gets no
// narration, and the session is left unchanged.
func (o *orchestrator) Narrate(ctx context.Context, input *NarrateInput) (*NarrateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.lockSession(input.SessionID)
	defer unlock()

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if o.narrator == nil {
		return &NarrateOutput{Session: sess}, nil
	}

	text, err := o.narrator.Narrate(ctx, sess)
	if err != nil {
		slog.Warn("narration collaborator failed",
			"session_id", sess.ID,
			"error", err)
		return &NarrateOutput{Session: sess}, nil
	}

	sess.AppendNarration(text)
	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	return &NarrateOutput{Narration: text, Session: sess}, nil
}

// parseAbility accepts three-letter keys and full ability names
func parseAbility(key string) (entities.Ability, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if ability, ok := entities.AbilityFullNames[k]; ok {
		return ability, nil
	}
	if entities.IsAbility(k) {
		return entities.Ability(k), nil
	}
	return "", errors.NotFoundf("unknown ability: %s", key)
}

// clampDamage floors a damage total at zero; formulas with negative
// modifiers can roll below it
func clampDamage(total int) int {
	if total < 0 {
		return 0
	}
	return total
}

// Log line builders. Lines are deterministic given fixed dice outcomes;
// they are both the audit trail and the narration collaborator's input.

func openingLine(char *entities.Character, monster *entities.Monster) string {
	return fmt.Sprintf("combat begins: %s vs %s", char.Name, monster.Name)
}

func d20Part(die, bonus, total int) string {
	if bonus < 0 {
		return fmt.Sprintf("d20(%d) - %d = %d", die, -bonus, total)
	}
	return fmt.Sprintf("d20(%d) + %d = %d", die, bonus, total)
}

func attackLine(attacker, target, actionName string, die, bonus, total, ac int, hit bool) string {
	withClause := ""
	if actionName != "" {
		withClause = fmt.Sprintf(" with %s", actionName)
	}
	return fmt.Sprintf("%s attacks %s%s: %s vs AC %d - %s",
		attacker, target, withClause, d20Part(die, bonus, total), ac, hitOrMiss(hit))
}

func spellAttackLine(caster, spellName, target string, die, bonus, total, ac int, hit bool) string {
	return fmt.Sprintf("%s casts %s at %s: %s vs AC %d - %s",
		caster, spellName, target, d20Part(die, bonus, total), ac, hitOrMiss(hit))
}

func saveLine(target string, ability entities.Ability, source string, die, bonus, total, dc int, success bool) string {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	return fmt.Sprintf("%s rolls a %s save against %s: %s vs DC %d - %s",
		target, ability, source, d20Part(die, bonus, total), dc, outcome)
}

func checkLine(name, label string, die, bonus, total, dc int, success bool) string {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	return fmt.Sprintf("%s rolls a %s check: %s vs DC %d - %s",
		name, label, d20Part(die, bonus, total), dc, outcome)
}

func damageLine(target string, damage *DamageDetails, remainingHP int) string {
	typeClause := ""
	if damage.Type != "" {
		typeClause = damage.Type + " "
	}
	return fmt.Sprintf("%s takes %d %sdamage (%s) - %d HP remaining",
		target, damage.Total, typeClause, rollsCSV(damage.Rolls), remainingHP)
}

func hitOrMiss(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

func rollsCSV(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, roll := range rolls {
		parts[i] = strconv.Itoa(roll)
	}
	return strings.Join(parts, ",")
}
