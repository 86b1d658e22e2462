// Package game holds the playfield and the tick-by-tick world simulation.
package game

import (
	"fmt"
	"sort"

	"tty-invaders/internal/models"

	"github.com/google/uuid"
)

// Input is the single player action applied at the start of a tick.
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputFire
)

// Outcome describes whether the game goes on and, if not, how it ended.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeRoundLimit
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeRoundLimit:
		return "round limit"
	case OutcomeQuit:
		return "quit"
	}
	return "unknown"
}

// TickResult reports the state after a tick.
type TickResult struct {
	Round    int
	Score    int
	Lives    int
	Invaders int
	Outcome  Outcome
	Events   []Event
}

// Simulation owns the grid and every entity on it. Score and lives live
// here and are only reported through TickResult and the accessors.
type Simulation struct {
	cfg    models.GameConfig
	grid   *Grid
	player models.Player

	invaders []*models.Invader
	shots    []*models.Projectile

	score     int
	lives     int
	round     int
	direction int // toggles every tick, invaders do not sweep sideways yet
	outcome   Outcome
	events    []Event
}

// NewSimulation builds the grid and places the player and every wave.
func NewSimulation(cfg models.GameConfig) (*Simulation, error) {
	grid, err := NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}

	center := cfg.Cols / 2
	s := &Simulation{
		cfg:       cfg,
		grid:      grid,
		lives:     cfg.Lives,
		direction: 1,
		player: models.Player{
			Health: cfg.Player.Health,
			Model:  models.FirstRune(cfg.Player.Model, 'A'),
			Weapon: models.FirstRune(cfg.Player.Weapon, '^'),
			Pos:    models.Position{Row: cfg.Rows - 1, Col: center},
			Alive:  true,
		},
	}
	s.must(grid.Set(s.player.Pos.Row, s.player.Pos.Col, models.CellPlayer))

	for i, w := range cfg.Waves {
		if err := s.placeWave(w, cfg.InvadersPerWave, center); err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
	}
	return s, nil
}

// placeWave lays out n invaders contiguously, centered on center.
func (s *Simulation) placeWave(w models.WaveSpec, n, center int) error {
	if w.Offset < 0 || w.Offset >= s.grid.Rows()-1 {
		return fmt.Errorf("%w: offset %d leaves no room above the player", ErrOutOfBounds, w.Offset)
	}
	start := center - n/2
	if n < 1 || start < 0 || start+n > s.grid.Cols() {
		return fmt.Errorf("%w: %d invaders do not fit in %d columns", ErrOutOfBounds, n, s.grid.Cols())
	}

	kind := w.Cell()
	for col := start; col < start+n; col++ {
		if c, _ := s.grid.Get(w.Offset, col); c != models.CellBlank {
			return fmt.Errorf("%w: (%d,%d) already holds %s", ErrOutOfBounds, w.Offset, col, c)
		}
		inv := &models.Invader{
			ID:     uuid.NewString(),
			Health: w.Health,
			Model:  models.FirstRune(w.Model, 'O'),
			Weapon: models.FirstRune(w.Weapon, 'U'),
			Kind:   kind,
			Pos:    models.Position{Row: w.Offset, Col: col},
			Alive:  true,
		}
		s.must(s.grid.Set(inv.Pos.Row, inv.Pos.Col, kind))
		s.invaders = append(s.invaders, inv)
	}
	return nil
}

// Tick advances the world by one step: input, projectiles, invaders, end check.
// A finished simulation no longer changes.
func (s *Simulation) Tick(in Input) TickResult {
	if s.outcome != OutcomeContinue {
		return s.Result()
	}

	s.round++
	s.events = s.events[:0]

	// Shots fired during this tick start moving on the next one.
	inFlight := len(s.shots)
	s.applyInput(in)
	s.advanceProjectiles(s.shots[:inFlight])
	s.advanceInvaders()
	s.compactShots()
	s.outcome = s.checkEnd()

	return s.Result()
}

func (s *Simulation) applyInput(in Input) {
	if !s.player.Alive {
		return
	}
	switch in {
	case InputLeft:
		if s.player.Pos.Col > 0 {
			s.movePlayer(-1)
		}
	case InputRight:
		if s.player.Pos.Col < s.grid.Cols()-1 {
			s.movePlayer(1)
		}
	case InputFire:
		s.fire()
	}
}

func (s *Simulation) movePlayer(dCol int) {
	to := models.Position{Row: s.player.Pos.Row, Col: s.player.Pos.Col + dCol}
	switch target := s.cell(to); {
	case target == models.CellInvaderShot:
		s.removeShot(s.shotAt(to))
		s.hitPlayer()
	case target != models.CellBlank:
		return
	}
	s.must(s.grid.MoveOccupant(s.player.Pos.Row, s.player.Pos.Col, 0, dCol))
	s.player.Pos = to
}

func (s *Simulation) fire() {
	if s.playerShotInFlight() {
		return
	}
	at := models.Position{Row: s.player.Pos.Row - 1, Col: s.player.Pos.Col}
	if !s.grid.InBounds(at.Row, at.Col) {
		return
	}

	switch target := s.cell(at); {
	case target.IsInvader():
		s.destroyInvader(s.invaderAt(at))
		return
	case target == models.CellInvaderShot:
		s.removeShot(s.shotAt(at))
		s.emit(EventShotsCollided, at, "")
		return
	}

	shot := &models.Projectile{Side: models.SidePlayer, Weapon: s.player.Weapon, Pos: at, Live: true}
	s.must(s.grid.Set(at.Row, at.Col, shot.Cell()))
	s.shots = append(s.shots, shot)
	s.emit(EventShotFired, at, "")
}

func (s *Simulation) playerShotInFlight() bool {
	for _, p := range s.shots {
		if p.Live && p.Side == models.SidePlayer {
			return true
		}
	}
	return false
}

func (s *Simulation) advanceProjectiles(shots []*models.Projectile) {
	for _, p := range shots {
		if !p.Live {
			continue
		}
		dRow := p.Direction()
		to := models.Position{Row: p.Pos.Row + dRow, Col: p.Pos.Col}

		if !s.grid.InBounds(to.Row, to.Col) {
			s.must(s.grid.MoveOccupant(p.Pos.Row, p.Pos.Col, dRow, 0))
			p.Live = false
			s.emit(EventShotExpired, p.Pos, "")
			continue
		}

		switch target := s.cell(to); {
		case p.Side == models.SidePlayer && target.IsInvader():
			s.removeShot(p)
			s.destroyInvader(s.invaderAt(to))
		case p.Side == models.SideInvader && target == models.CellPlayer:
			s.removeShot(p)
			s.hitPlayer()
		case target.IsProjectile():
			s.removeShot(p)
			s.removeShot(s.shotAt(to))
			s.emit(EventShotsCollided, to, "")
		case target != models.CellBlank:
			// An invader shot running into its own fleet is absorbed.
			s.removeShot(p)
		default:
			s.must(s.grid.MoveOccupant(p.Pos.Row, p.Pos.Col, dRow, 0))
			p.Pos = to
		}
	}
}

// advanceInvaders moves the whole fleet one row toward the player,
// bottom row first so no invader steps onto one that has not moved yet.
func (s *Simulation) advanceInvaders() {
	s.direction = -s.direction

	fleet := make([]*models.Invader, 0, len(s.invaders))
	for _, inv := range s.invaders {
		if inv.Alive {
			fleet = append(fleet, inv)
		}
	}
	sort.SliceStable(fleet, func(i, j int) bool {
		return fleet[i].Pos.Row > fleet[j].Pos.Row
	})

	for _, inv := range fleet {
		to := models.Position{Row: inv.Pos.Row + 1, Col: inv.Pos.Col}
		if !s.grid.InBounds(to.Row, to.Col) {
			continue
		}

		switch target := s.cell(to); {
		case target == models.CellPlayerShot:
			s.removeShot(s.shotAt(to))
			s.destroyInvader(inv)
			continue
		case target == models.CellInvaderShot:
			s.removeShot(s.shotAt(to))
		case target == models.CellPlayer:
			s.player.Alive = false
			s.emit(EventPlayerOverrun, to, inv.ID)
		case target != models.CellBlank:
			continue
		}

		s.must(s.grid.MoveOccupant(inv.Pos.Row, inv.Pos.Col, 1, 0))
		inv.Pos = to
	}
}

func (s *Simulation) compactShots() {
	live := s.shots[:0]
	for _, p := range s.shots {
		if p.Live {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(s.shots); i++ {
		s.shots[i] = nil
	}
	s.shots = live
}

func (s *Simulation) checkEnd() Outcome {
	if s.invaderCount() == 0 {
		return OutcomeVictory
	}
	if s.lives <= 0 || !s.player.Alive {
		return OutcomeDefeat
	}
	for _, inv := range s.invaders {
		if inv.Alive && inv.Pos.Row == s.player.Pos.Row {
			return OutcomeDefeat
		}
	}
	return OutcomeContinue
}

// End stops the simulation with an outcome decided outside of it, such as
// the round limit or a quit request. An already finished game keeps its outcome.
func (s *Simulation) End(o Outcome) {
	if s.outcome == OutcomeContinue {
		s.outcome = o
	}
}

// Result reports the current state without advancing the simulation.
func (s *Simulation) Result() TickResult {
	events := make([]Event, len(s.events))
	copy(events, s.events)
	return TickResult{
		Round:    s.round,
		Score:    s.score,
		Lives:    s.lives,
		Invaders: s.invaderCount(),
		Outcome:  s.outcome,
		Events:   events,
	}
}

func (s *Simulation) cell(p models.Position) models.Cell {
	c, err := s.grid.Get(p.Row, p.Col)
	s.must(err)
	return c
}

func (s *Simulation) invaderAt(p models.Position) *models.Invader {
	for _, inv := range s.invaders {
		if inv.Alive && inv.Pos == p {
			return inv
		}
	}
	return nil
}

func (s *Simulation) shotAt(p models.Position) *models.Projectile {
	for _, shot := range s.shots {
		if shot.Live && shot.Pos == p {
			return shot
		}
	}
	return nil
}

func (s *Simulation) invaderCount() int {
	n := 0
	for _, inv := range s.invaders {
		if inv.Alive {
			n++
		}
	}
	return n
}

// must turns a grid error into a panic. Every grid access in a tick is
// bounds-checked first, so an error here is a broken invariant.
func (s *Simulation) must(err error) {
	if err != nil {
		panic(fmt.Sprintf("game: grid invariant violated: %v", err))
	}
}

func (s *Simulation) Grid() *Grid { return s.grid }
func (s *Simulation) Player() models.Player { return s.player }
func (s *Simulation) Score() int { return s.score }
func (s *Simulation) Lives() int { return s.lives }
func (s *Simulation) Round() int { return s.round }
func (s *Simulation) Outcome() Outcome { return s.outcome }
func (s *Simulation) Direction() int { return s.direction }

// Invaders returns copies of the invaders still alive.
func (s *Simulation) Invaders() []models.Invader {
	out := make([]models.Invader, 0, len(s.invaders))
	for _, inv := range s.invaders {
		if inv.Alive {
			out = append(out, *inv)
		}
	}
	return out
}

// Projectiles returns copies of the shots in flight.
func (s *Simulation) Projectiles() []models.Projectile {
	out := make([]models.Projectile, 0, len(s.shots))
	for _, p := range s.shots {
		if p.Live {
			out = append(out, *p)
		}
	}
	return out
}
