package entities

import "time"

// Spell is a catalog spell entry. Mechanics are derived from the
// description text, with any higher-level casting text appended first.
type Spell struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	HigherLevels string `json:"higher_levels,omitempty"`
}

// Session is one PC-vs-one-adversary encounter. The character and monster
// are session-owned clones of catalog templates; all mutation happens here.
type Session struct {
	ID        string     `json:"id"`
	Character *Character `json:"character"`
	Monster   *Monster   `json:"monster"`
	Round     int        `json:"round"`

	// Append-only audit trail; the sole input to the narration collaborator
	Log []string `json:"log"`

	// Append-only narration returned by the collaborator
	Narration []string `json:"narration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOver reports whether either combatant has dropped to 0 hp. There is no
// explicit termination flag beyond this condition.
func (s *Session) IsOver() bool {
	return s.Character.CurrentHP <= 0 || s.Monster.CurrentHP <= 0
}

// AppendLog adds a line to the combat log
func (s *Session) AppendLog(line string) {
	s.Log = append(s.Log, line)
}

// AppendNarration adds collaborator text to the narration list
func (s *Session) AppendNarration(text string) {
	s.Narration = append(s.Narration, text)
}

// LastLogLine returns the most recent log entry, or "" when empty
func (s *Session) LastLogLine() string {
	if len(s.Log) == 0 {
		return ""
	}
	return s.Log[len(s.Log)-1]
}
