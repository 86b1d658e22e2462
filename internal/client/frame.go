package client

import (
	"fmt"
	"strings"

	"tty-invaders/internal/game"
	"tty-invaders/internal/models"
)

const border = '|'

// Frame is one full screen of text: score line, bordered grid rows and
// the lives line.
type Frame struct {
	Lines []string
}

func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// BuildFrame renders the grid and HUD as plain text.
func BuildFrame(g *game.Grid, glyphs models.Glyphs, score, lives int) Frame {
	lines := make([]string, 0, g.Rows()+4)
	lines = append(lines, fmt.Sprintf("Score: %d", score), "")

	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		row, err := g.Row(r)
		if err != nil {
			break
		}
		sb.Reset()
		sb.WriteRune(border)
		for _, c := range row {
			sb.WriteRune(glyphs.Rune(c))
		}
		sb.WriteRune(border)
		lines = append(lines, sb.String())
	}

	lines = append(lines, "", fmt.Sprintf("Lives left: %d", lives))
	return Frame{Lines: lines}
}

// StartScreenLines is the title screen with the configured controls.
func StartScreenLines(keys models.KeySpec) []string {
	upper := func(s string) string { return strings.ToUpper(s) }
	return []string{
		"------------------- SPACE INVADERS -------------------",
		"",
		"Controls:",
		fmt.Sprintf(" - %s / Left:  Move left.", upper(keys.Left)),
		fmt.Sprintf(" - %s / Right: Move right.", upper(keys.Right)),
		fmt.Sprintf(" - %s / Space: Fire laser.", upper(keys.Fire)),
		fmt.Sprintf(" - %s / Esc:   Leave the game.", upper(keys.Quit)),
		"",
		"Press ENTER to start and ESC to leave",
		"------------------------------------------------------",
	}
}

// EndLines is the closing message for a finished session.
func EndLines(res game.TickResult) []string {
	var headline string
	switch res.Outcome {
	case game.OutcomeVictory:
		headline = "Victory! Every invader has been destroyed."
	case game.OutcomeDefeat:
		if res.Lives <= 0 {
			headline = "Game over. You ran out of lives."
		} else {
			headline = "Game over. The invaders have landed."
		}
	case game.OutcomeRoundLimit:
		headline = "Time is up. The invaders are still out there."
	case game.OutcomeQuit:
		headline = "Game aborted."
	default:
		headline = "Game ended."
	}
	return []string{
		headline,
		"",
		fmt.Sprintf("Final score: %d after %d rounds", res.Score, res.Round),
		"",
		"Press any key to continue...",
	}
}
