// Package board holds the Boggle letter grid and the cube supply that
// fills it at the start of a round.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions is returned when a board cannot be set up: the
// requested size is below the minimum, the grid is not square, or the
// cube file does not carry enough usable cubes. It is fatal to starting
// a round.
var ErrInvalidDimensions = errors.New("invalid board dimensions")

// MinBoardSize is the smallest playable board.
const MinBoardSize = 2

// A Position addresses one cell of the board, 0-indexed.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Neighbors are the 8-directional adjacency offsets, in the order the
// search algorithms visit them: up, down, left, right, up-left,
// up-right, down-left, down-right. This order decides which path a
// word lookup returns when several exist, so it must not change.
var Neighbors = [8]Position{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Board is a square grid of single lowercase letters. It is immutable
// for the duration of any search over it.
type Board struct {
	letters [][]byte
	dim     int
}

// NewBoardFromGrid builds a board from a grid of single-character
// cells, lowercasing each. This is the deterministic injection path
// used by tests and the `set` shell command.
func NewBoardFromGrid(grid [][]string) (*Board, error) {
	size := len(grid)
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: size %d is below the minimum of %d",
			ErrInvalidDimensions, size, MinBoardSize)
	}
	b := &Board{dim: size, letters: make([][]byte, size)}
	for r, row := range grid {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrInvalidDimensions, r, len(row), size)
		}
		b.letters[r] = make([]byte, size)
		for c, cell := range row {
			if len(cell) != 1 {
				return nil, fmt.Errorf("%w: cell (%d, %d) %q is not a single letter",
					ErrInvalidDimensions, r, c, cell)
			}
			b.letters[r][c] = lower(cell[0])
		}
	}
	return b, nil
}

// Dim returns the board dimension (the board is Dim x Dim).
func (b *Board) Dim() int {
	return b.dim
}

// Letter returns the letter at (row, col). The caller must stay in
// bounds.
func (b *Board) Letter(row, col int) byte {
	return b.letters[row][col]
}

// InBounds reports whether (row, col) addresses a cell of the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.dim && col >= 0 && col < b.dim
}

// Grid returns a copy of the board as a grid of one-letter strings.
func (b *Board) Grid() [][]string {
	grid := make([][]string, b.dim)
	for r := 0; r < b.dim; r++ {
		grid[r] = make([]string, b.dim)
		for c := 0; c < b.dim; c++ {
			grid[r][c] = string(b.letters[r][c])
		}
	}
	return grid
}

// ToDisplayText returns a printable rendition of the board with row and
// column headers.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	n := b.Dim()
	str.WriteString("   ")
	for i := 0; i < n; i++ {
		str.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	str.WriteString("\n   " + strings.Repeat("-", n*2) + "\n")
	for r := 0; r < n; r++ {
		str.WriteString(fmt.Sprintf("%2d|", r+1))
		for c := 0; c < n; c++ {
			str.WriteByte(upper(b.letters[r][c]))
			str.WriteByte(' ')
		}
		str.WriteString("|\n")
	}
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return "\n" + str.String()
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
