package client

import (
	"fmt"
	"log"
	"time"

	"tty-invaders/internal/game"
	"tty-invaders/internal/models"

	"github.com/google/uuid"
)

// Display shows frames and full-screen messages.
type Display interface {
	Draw(f Frame) error
	Message(lines ...string) error
}

// KeySource supplies keypresses. Poll must not block.
type KeySource interface {
	Poll() (Key, bool)
	Wait() Key
}

// Session runs one game from the first tick to the closing prompt.
type Session struct {
	ID string

	cfg     models.GameConfig
	sim     *game.Simulation
	keys    KeyMap
	glyphs  models.Glyphs
	display Display
	input   KeySource

	// Sleep waits between ticks. Tests replace it to run without delay.
	Sleep func(time.Duration)
}

// NewSession sets up the simulation for cfg.
func NewSession(cfg models.GameConfig, display Display, input KeySource) (*Session, error) {
	sim, err := game.NewSimulation(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up game: %w", err)
	}
	return &Session{
		ID:      uuid.NewString(),
		cfg:     cfg,
		sim:     sim,
		keys:    NewKeyMap(cfg.Keys),
		glyphs:  cfg.Glyphs(),
		display: display,
		input:   input,
		Sleep:   time.Sleep,
	}, nil
}

// Simulation exposes the running simulation.
func (s *Session) Simulation() *game.Simulation {
	return s.sim
}

// Run plays ticks until the game is won, lost, quit or out of rounds, then
// shows the result and waits for a final keypress.
func (s *Session) Run() game.TickResult {
	log.Printf("[Session %s] Started: %dx%d field, %d invaders, %d lives, %d rounds max.",
		s.ID, s.cfg.Rows, s.cfg.Cols, len(s.sim.Invaders()), s.sim.Lives(), s.cfg.MaxRounds)

	s.render(s.sim.Result())
	interval := time.Duration(s.cfg.TickMillis) * time.Millisecond

	var res game.TickResult
	for {
		action := ActionNone
		if k, ok := s.input.Poll(); ok {
			action = s.keys.Lookup(k)
		}
		if action == ActionQuit {
			log.Printf("[Session %s] Quit requested in round %d.", s.ID, s.sim.Round())
			s.sim.End(game.OutcomeQuit)
			res = s.sim.Result()
			break
		}

		res = s.sim.Tick(action.Input())
		s.logEvents(res)
		s.render(res)

		if res.Outcome != game.OutcomeContinue {
			break
		}
		if res.Round >= s.cfg.MaxRounds {
			s.sim.End(game.OutcomeRoundLimit)
			res = s.sim.Result()
			break
		}
		s.Sleep(interval)
	}

	log.Printf("[Session %s] Finished with %s after %d rounds. Score: %d, lives: %d, invaders left: %d.",
		s.ID, res.Outcome, res.Round, res.Score, res.Lives, res.Invaders)

	if err := s.display.Message(EndLines(res)...); err != nil {
		log.Printf("[Session %s] Failed to show end message: %v", s.ID, err)
	}
	s.input.Wait()
	return res
}

func (s *Session) render(res game.TickResult) {
	f := BuildFrame(s.sim.Grid(), s.glyphs, res.Score, res.Lives)
	if err := s.display.Draw(f); err != nil {
		log.Printf("[Session %s] Failed to draw round %d: %v", s.ID, res.Round, err)
	}
}

func (s *Session) logEvents(res game.TickResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case game.EventInvaderHit:
			log.Printf("[Session %s] Round %d: invader %s hit at (%d,%d). Score: %d",
				s.ID, res.Round, ev.InvaderID, ev.Pos.Row, ev.Pos.Col, res.Score)
		case game.EventPlayerHit:
			log.Printf("[Session %s] Round %d: player hit. Lives: %d", s.ID, res.Round, res.Lives)
		case game.EventPlayerOverrun:
			log.Printf("[Session %s] Round %d: invader %s overran the player.", s.ID, res.Round, ev.InvaderID)
		}
	}
}
