package game

import (
	"errors"
	"testing"

	"tty-invaders/internal/models"
)

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 5},
		{"zero cols", 5, 0},
		{"negative rows", -1, 3},
		{"negative both", -2, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.rows, tt.cols)
			if !errors.Is(err, ErrInvalidDimension) {
				t.Fatalf("expected ErrInvalidDimension, got %v", err)
			}
			if g != nil {
				t.Errorf("expected nil grid on error")
			}
		})
	}
}

func TestGridStartsBlank(t *testing.T) {
	g, err := NewGrid(3, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("expected 3x4, got %dx%d", g.Rows(), g.Cols())
	}
	if n := g.Count(func(c models.Cell) bool { return c != models.CellBlank }); n != 0 {
		t.Errorf("expected empty grid, found %d occupants", n)
	}
}

func TestGridGetAfterSet(t *testing.T) {
	g, err := NewGrid(4, 5)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	kinds := []models.Cell{
		models.CellPlayer, models.CellInvaderA, models.CellInvaderB,
		models.CellPlayerShot, models.CellInvaderShot, models.CellBlank,
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			want := kinds[(r*g.Cols()+c)%len(kinds)]
			if err := g.Set(r, c, want); err != nil {
				t.Fatalf("Set(%d,%d): %v", r, c, err)
			}
			got, err := g.Get(r, c)
			if err != nil {
				t.Fatalf("Get(%d,%d): %v", r, c, err)
			}
			if got != want {
				t.Errorf("Get(%d,%d) = %s, want %s", r, c, got, want)
			}
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g, _ := NewGrid(3, 3)
	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}}
	for _, rc := range coords {
		if _, err := g.Get(rc[0], rc[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d,%d): expected ErrOutOfBounds, got %v", rc[0], rc[1], err)
		}
		if err := g.Set(rc[0], rc[1], models.CellPlayer); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d): expected ErrOutOfBounds, got %v", rc[0], rc[1], err)
		}
		if err := g.MoveOccupant(rc[0], rc[1], 1, 0); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("MoveOccupant(%d,%d): expected ErrOutOfBounds, got %v", rc[0], rc[1], err)
		}
	}
	if _, err := g.Row(3); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Row(3): expected ErrOutOfBounds, got %v", err)
	}
}

func TestGridMoveOccupant(t *testing.T) {
	tests := []struct {
		name       string
		occupant   models.Cell
		from       [2]int
		dRow, dCol int
		wantAt     [2]int // ignored when dropped
		dropped    bool
	}{
		{"invader moves down", models.CellInvaderA, [2]int{0, 1}, 1, 0, [2]int{1, 1}, false},
		{"shot moves up", models.CellPlayerShot, [2]int{2, 1}, -1, 0, [2]int{1, 1}, false},
		{"player moves right", models.CellPlayer, [2]int{2, 1}, 0, 1, [2]int{2, 2}, false},
		{"shot leaving the top is dropped", models.CellPlayerShot, [2]int{0, 1}, -1, 0, [2]int{}, true},
		{"invader leaving the bottom is dropped", models.CellInvaderB, [2]int{2, 0}, 1, 0, [2]int{}, true},
		{"player stays at the left edge", models.CellPlayer, [2]int{2, 0}, 0, -1, [2]int{2, 0}, false},
		{"player stays at the right edge", models.CellPlayer, [2]int{2, 2}, 0, 1, [2]int{2, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := NewGrid(3, 3)
			if err := g.Set(tt.from[0], tt.from[1], tt.occupant); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := g.MoveOccupant(tt.from[0], tt.from[1], tt.dRow, tt.dCol); err != nil {
				t.Fatalf("MoveOccupant: %v", err)
			}

			occupied := g.Count(func(c models.Cell) bool { return c != models.CellBlank })
			if tt.dropped {
				if occupied != 0 {
					t.Errorf("expected occupant to be dropped, grid has %d occupants", occupied)
				}
				return
			}
			if occupied != 1 {
				t.Fatalf("expected exactly one occupant, got %d", occupied)
			}
			got, _ := g.Get(tt.wantAt[0], tt.wantAt[1])
			if got != tt.occupant {
				t.Errorf("expected %s at %v, got %s", tt.occupant, tt.wantAt, got)
			}
		})
	}
}

func TestGridRowReturnsCopy(t *testing.T) {
	g, _ := NewGrid(2, 2)
	_ = g.Set(0, 0, models.CellInvaderA)
	row, err := g.Row(0)
	if err != nil {
		t.Fatalf("Row: %v", err)
	}
	row[0] = models.CellPlayer
	if got, _ := g.Get(0, 0); got != models.CellInvaderA {
		t.Errorf("modifying the returned row changed the grid: got %s", got)
	}
}
