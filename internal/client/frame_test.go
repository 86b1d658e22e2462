package client

import (
	"strings"
	"testing"

	"tty-invaders/internal/game"
	"tty-invaders/internal/models"
)

var testGlyphs = models.Glyphs{
	models.CellBlank:       ' ',
	models.CellPlayer:      'A',
	models.CellInvaderA:    'O',
	models.CellInvaderB:    'M',
	models.CellPlayerShot:  '^',
	models.CellInvaderShot: 'U',
}

func TestBuildFrame(t *testing.T) {
	g, err := game.NewGrid(3, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	_ = g.Set(0, 0, models.CellInvaderA)
	_ = g.Set(0, 3, models.CellInvaderB)
	_ = g.Set(1, 2, models.CellPlayerShot)
	_ = g.Set(2, 2, models.CellPlayer)

	f := BuildFrame(g, testGlyphs, 300, 2)
	want := []string{
		"Score: 300",
		"",
		"|O  M|",
		"|  ^ |",
		"|  A |",
		"",
		"Lives left: 2",
	}
	if len(f.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(f.Lines), f)
	}
	for i := range want {
		if f.Lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, f.Lines[i], want[i])
		}
	}
}

func TestBuildFrameRowWidth(t *testing.T) {
	g, _ := game.NewGrid(15, 31)
	f := BuildFrame(g, testGlyphs, 0, 3)
	if len(f.Lines) != 15+4 {
		t.Fatalf("expected %d lines, got %d", 15+4, len(f.Lines))
	}
	for _, line := range f.Lines[2 : 2+15] {
		if len(line) != 31+2 || line[0] != '|' || line[len(line)-1] != '|' {
			t.Errorf("malformed row %q", line)
		}
		if strings.TrimSpace(strings.Trim(line, "|")) != "" {
			t.Errorf("blank grid rendered %q", line)
		}
	}
}

func TestStartScreenListsKeys(t *testing.T) {
	lines := strings.Join(StartScreenLines(models.KeySpec{Left: "a", Right: "d", Fire: "m", Quit: "q"}), "\n")
	for _, want := range []string{"SPACE INVADERS", "A / Left", "D / Right", "M / Space", "Q / Esc", "ENTER"} {
		if !strings.Contains(lines, want) {
			t.Errorf("start screen is missing %q", want)
		}
	}
}

func TestEndLines(t *testing.T) {
	tests := []struct {
		res  game.TickResult
		want string
	}{
		{game.TickResult{Outcome: game.OutcomeVictory, Score: 500, Round: 9, Lives: 3}, "Victory"},
		{game.TickResult{Outcome: game.OutcomeDefeat, Lives: 0}, "ran out of lives"},
		{game.TickResult{Outcome: game.OutcomeDefeat, Lives: 2}, "landed"},
		{game.TickResult{Outcome: game.OutcomeRoundLimit, Lives: 1}, "Time is up"},
		{game.TickResult{Outcome: game.OutcomeQuit, Lives: 3}, "aborted"},
	}
	for _, tt := range tests {
		lines := EndLines(tt.res)
		if !strings.Contains(lines[0], tt.want) {
			t.Errorf("%s: headline %q does not mention %q", tt.res.Outcome, lines[0], tt.want)
		}
		if !strings.Contains(strings.Join(lines, "\n"), "Press any key") {
			t.Errorf("%s: missing continue prompt", tt.res.Outcome)
		}
	}
}
