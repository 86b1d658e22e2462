package game

import (
	"errors"
	"fmt"

	"tty-invaders/internal/models"
)

var (
	// ErrInvalidDimension is returned when a grid is built with a non-positive size.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned for any access outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

// Grid is the playfield buffer. Its size is fixed at construction.
type Grid struct {
	rows, cols int
	cells      [][]models.Cell
}

// NewGrid creates a blank grid of the given size.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}

	cells := make([][]models.Cell, rows)
	for i := range cells {
		cells[i] = make([]models.Cell, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) check(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return nil
}

// Get returns the occupant of a cell.
func (g *Grid) Get(row, col int) (models.Cell, error) {
	if err := g.check(row, col); err != nil {
		return models.CellBlank, err
	}
	return g.cells[row][col], nil
}

// Set overwrites a cell.
func (g *Grid) Set(row, col int, c models.Cell) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.cells[row][col] = c
	return nil
}

// MoveOccupant relocates whatever sits at (row, col) by (dRow, dCol).
// The source cell is cleared. When the destination is outside the grid the
// occupant is dropped, except for the player which stays where it was.
func (g *Grid) MoveOccupant(row, col, dRow, dCol int) error {
	occupant, err := g.Get(row, col)
	if err != nil {
		return err
	}

	toRow, toCol := row+dRow, col+dCol
	if !g.InBounds(toRow, toCol) {
		if occupant != models.CellPlayer {
			g.cells[row][col] = models.CellBlank
		}
		return nil
	}

	g.cells[row][col] = models.CellBlank
	g.cells[toRow][toCol] = occupant
	return nil
}

// Row returns a copy of one grid row.
func (g *Grid) Row(row int) ([]models.Cell, error) {
	if row < 0 || row >= g.rows {
		return nil, fmt.Errorf("%w: row %d in %dx%d grid", ErrOutOfBounds, row, g.rows, g.cols)
	}
	out := make([]models.Cell, g.cols)
	copy(out, g.cells[row])
	return out, nil
}

// Count returns how many cells satisfy match.
func (g *Grid) Count(match func(models.Cell) bool) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if match(c) {
				n++
			}
		}
	}
	return n
}
