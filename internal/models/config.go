package models

// UnitSpec describes the stats and glyphs of a unit type.
type UnitSpec struct {
	Health int    `yaml:"health"`
	Model  string `yaml:"model"`  // single glyph drawn for the unit
	Weapon string `yaml:"weapon"` // single glyph drawn for its projectile
}

// WaveSpec places one row of invaders.
type WaveSpec struct {
	Offset   int    `yaml:"offset"`  // row the wave starts on
	Variant  string `yaml:"variant"` // "a" or "b"
	UnitSpec `yaml:",inline"`
}

// KeySpec holds the characters bound to each action.
type KeySpec struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Fire  string `yaml:"fire"`
	Quit  string `yaml:"quit"`
}

// GameConfig holds every tunable of a game, loaded from the embedded YAML.
type GameConfig struct {
	Rows            int        `yaml:"rows"`
	Cols            int        `yaml:"cols"`
	InvadersPerWave int        `yaml:"invadersPerWave"`
	Lives           int        `yaml:"lives"`
	MaxRounds       int        `yaml:"maxRounds"`
	TickMillis      int        `yaml:"tickMillis"`
	HitScore        int        `yaml:"hitScore"`
	Player          UnitSpec   `yaml:"player"`
	Waves           []WaveSpec `yaml:"waves"`
	Keys            KeySpec    `yaml:"keys"`
}

// Glyphs maps each cell kind to the rune drawn for it.
type Glyphs map[Cell]rune

// Glyphs derives the render table from the unit specs. The first wave of
// each variant decides that variant's glyph.
func (c *GameConfig) Glyphs() Glyphs {
	g := Glyphs{
		CellBlank:       ' ',
		CellPlayer:      FirstRune(c.Player.Model, 'A'),
		CellPlayerShot:  FirstRune(c.Player.Weapon, '^'),
		CellInvaderA:    'O',
		CellInvaderB:    'M',
		CellInvaderShot: 'U',
	}
	seen := map[Cell]bool{}
	for _, w := range c.Waves {
		kind := w.Cell()
		if seen[kind] {
			continue
		}
		seen[kind] = true
		g[kind] = FirstRune(w.Model, g[kind])
		g[CellInvaderShot] = FirstRune(w.Weapon, g[CellInvaderShot])
	}
	return g
}

// Rune returns the glyph for a cell, falling back to '?' for unknown kinds.
func (g Glyphs) Rune(c Cell) rune {
	if r, ok := g[c]; ok {
		return r
	}
	return '?'
}

// Cell returns the grid kind for the wave's variant.
func (w WaveSpec) Cell() Cell {
	if w.Variant == "b" {
		return CellInvaderB
	}
	return CellInvaderA
}

// FirstRune returns the first rune of s, or def when s is empty.
func FirstRune(s string, def rune) rune {
	for _, r := range s {
		return r
	}
	return def
}
