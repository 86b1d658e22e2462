package models

// Cell is the kind of occupant stored in a grid cell.
// The grid stores kinds, glyphs are only looked up when rendering.
type Cell uint8

const (
	CellBlank Cell = iota
	CellPlayer
	CellInvaderA
	CellInvaderB
	CellPlayerShot
	CellInvaderShot
)

// IsInvader reports whether the cell holds an invader of either variant.
func (c Cell) IsInvader() bool {
	return c == CellInvaderA || c == CellInvaderB
}

// IsProjectile reports whether the cell holds a projectile from either side.
func (c Cell) IsProjectile() bool {
	return c == CellPlayerShot || c == CellInvaderShot
}

func (c Cell) String() string {
	switch c {
	case CellBlank:
		return "blank"
	case CellPlayer:
		return "player"
	case CellInvaderA:
		return "invader-a"
	case CellInvaderB:
		return "invader-b"
	case CellPlayerShot:
		return "player-shot"
	case CellInvaderShot:
		return "invader-shot"
	}
	return "unknown"
}

// Position is a grid coordinate. Row 0 is the top (invader side),
// the last row belongs to the player.
type Position struct {
	Row int
	Col int
}

// Side identifies who fired a projectile.
type Side int

const (
	SidePlayer Side = iota
	SideInvader
)

// Player is the unit controlled from the keyboard.
type Player struct {
	Health int
	Model  rune
	Weapon rune
	Pos    Position // Row is always the bottom row of the grid
	Alive  bool     // false once an invader overruns the player's cell
}

// Invader is one member of the descending fleet.
type Invader struct {
	ID     string // uuid, used in logs and hit events
	Health int    // tracked, a single hit still destroys the invader
	Model  rune
	Weapon rune
	Kind   Cell // CellInvaderA or CellInvaderB
	Pos    Position
	Alive  bool
}

// Projectile is a shot in flight.
type Projectile struct {
	Side   Side
	Weapon rune
	Pos    Position
	Live   bool
}

// Cell returns the grid kind used to draw the projectile.
func (p *Projectile) Cell() Cell {
	if p.Side == SideInvader {
		return CellInvaderShot
	}
	return CellPlayerShot
}

// Direction is the row delta applied each tick: player shots travel up,
// invader shots travel down.
func (p *Projectile) Direction() int {
	if p.Side == SideInvader {
		return 1
	}
	return -1
}
