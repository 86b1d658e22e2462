package game

import "tty-invaders/internal/models"

// EventKind names something that happened during a tick.
type EventKind int

const (
	EventShotFired EventKind = iota
	EventInvaderHit
	EventPlayerHit
	EventShotExpired
	EventShotsCollided
	EventPlayerOverrun
)

func (k EventKind) String() string {
	switch k {
	case EventShotFired:
		return "shot fired"
	case EventInvaderHit:
		return "invader hit"
	case EventPlayerHit:
		return "player hit"
	case EventShotExpired:
		return "shot left the field"
	case EventShotsCollided:
		return "shots collided"
	case EventPlayerOverrun:
		return "player overrun"
	}
	return "unknown"
}

// Event is reported in TickResult so the caller can log or animate it.
type Event struct {
	Kind      EventKind
	Pos       models.Position
	InvaderID string // set for invader hits and overruns
}

func (s *Simulation) emit(kind EventKind, pos models.Position, invaderID string) {
	s.events = append(s.events, Event{Kind: kind, Pos: pos, InvaderID: invaderID})
}

// destroyInvader removes an invader from the field and awards the hit score.
func (s *Simulation) destroyInvader(inv *models.Invader) {
	if inv == nil || !inv.Alive {
		return
	}
	inv.Alive = false
	inv.Health = 0
	s.must(s.grid.Set(inv.Pos.Row, inv.Pos.Col, models.CellBlank))
	s.score += s.cfg.HitScore
	s.emit(EventInvaderHit, inv.Pos, inv.ID)
}

// hitPlayer costs the player one life. Lives never drop below zero.
func (s *Simulation) hitPlayer() {
	s.lives--
	if s.lives < 0 {
		s.lives = 0
	}
	s.emit(EventPlayerHit, s.player.Pos, "")
}

// removeShot takes a projectile off the grid without side effects.
func (s *Simulation) removeShot(p *models.Projectile) {
	if p == nil || !p.Live {
		return
	}
	p.Live = false
	s.must(s.grid.Set(p.Pos.Row, p.Pos.Col, models.CellBlank))
}
