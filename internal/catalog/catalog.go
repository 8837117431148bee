// Package catalog provides the immutable registry of premade characters,
// monsters, and spells. The registry is injected at session creation;
// sessions receive clones and never mutate templates.
package catalog

import (
	"sort"
	"sync"

	"github.com/duelhall/encounter-api/internal/entities"
	"github.com/duelhall/encounter-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/duelhall/encounter-api/internal/catalog Catalog

// Catalog is a read-only registry of combat templates
type Catalog interface {
	// Character returns a clone of the character template with the given id
	Character(id string) (*entities.Character, error)

	// Monster returns a clone of the monster template with the given id
	Monster(id string) (*entities.Monster, error)

	// Spell returns the spell entry with the given id
	Spell(id string) (entities.Spell, error)

	// CharacterIDs lists the registered character ids, sorted
	CharacterIDs() []string

	// MonsterIDs lists the registered monster ids, sorted
	MonsterIDs() []string

	// SpellIDs lists the registered spell ids, sorted
	SpellIDs() []string
}

// InMemory implements Catalog with an in-process template store
type InMemory struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character
	monsters   map[string]*entities.Monster
	spells     map[string]entities.Spell
}

// Ensure InMemory implements Catalog
var _ Catalog = (*InMemory)(nil)

// NewInMemory creates an empty in-memory catalog
func NewInMemory() *InMemory {
	return &InMemory{
		characters: make(map[string]*entities.Character),
		monsters:   make(map[string]*entities.Monster),
		spells:     make(map[string]entities.Spell),
	}
}

// NewSRD creates a catalog seeded with the embedded SRD-style data
func NewSRD() *InMemory {
	c := NewInMemory()
	for _, char := range srdCharacters {
		c.AddCharacter(char)
	}
	for _, monster := range srdMonsters {
		c.AddMonster(monster)
	}
	for _, spell := range srdSpells {
		c.AddSpell(spell)
	}
	return c
}

// AddCharacter registers a character template. The catalog stores its own
// clone, so later caller mutations cannot leak in.
func (c *InMemory) AddCharacter(char *entities.Character) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.characters[char.ID] = char.Clone()
}

// AddMonster registers a monster template
func (c *InMemory) AddMonster(monster *entities.Monster) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.monsters[monster.ID] = monster.Clone()
}

// AddSpell registers a spell entry
func (c *InMemory) AddSpell(spell entities.Spell) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spells[spell.ID] = spell
}

// Character returns a clone of the character template with the given id
func (c *InMemory) Character(id string) (*entities.Character, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	char, ok := c.characters[id]
	if !ok {
		return nil, errors.NotFoundf("character not found: %s", id)
	}
	return char.Clone(), nil
}

// Monster returns a clone of the monster template with the given id
func (c *InMemory) Monster(id string) (*entities.Monster, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	monster, ok := c.monsters[id]
	if !ok {
		return nil, errors.NotFoundf("monster not found: %s", id)
	}
	return monster.Clone(), nil
}

// Spell returns the spell entry with the given id
func (c *InMemory) Spell(id string) (entities.Spell, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	spell, ok := c.spells[id]
	if !ok {
		return entities.Spell{}, errors.NotFoundf("spell not found: %s", id)
	}
	return spell, nil
}

// CharacterIDs lists the registered character ids, sorted
func (c *InMemory) CharacterIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.characters)
}

// MonsterIDs lists the registered monster ids, sorted
func (c *InMemory) MonsterIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.monsters)
}

// SpellIDs lists the registered spell ids, sorted
func (c *InMemory) SpellIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.spells)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
