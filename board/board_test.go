package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoardFromGrid(t *testing.T) {
	b, err := NewBoardFromGrid([][]string{{"C", "a"}, {"t", "S"}})
	assert.NoError(t, err)
	assert.Equal(t, 2, b.Dim())
	assert.Equal(t, byte('c'), b.Letter(0, 0))
	assert.Equal(t, byte('s'), b.Letter(1, 1))
}

func TestNewBoardFromGridRejectsBadGrids(t *testing.T) {
	testCases := []struct {
		name string
		grid [][]string
	}{
		{"too small", [][]string{{"a"}}},
		{"empty", [][]string{}},
		{"not square", [][]string{{"a", "b"}, {"c"}}},
		{"multi-letter cell", [][]string{{"a", "qu"}, {"c", "d"}}},
	}
	for _, tc := range testCases {
		_, err := NewBoardFromGrid(tc.grid)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%v: expected ErrInvalidDimensions, got %v", tc.name, err)
		}
	}
}

func TestInBounds(t *testing.T) {
	b, err := NewBoardFromGrid([][]string{{"a", "b"}, {"c", "d"}})
	assert.NoError(t, err)
	assert.True(t, b.InBounds(0, 0))
	assert.True(t, b.InBounds(1, 1))
	assert.False(t, b.InBounds(-1, 0))
	assert.False(t, b.InBounds(0, 2))
	assert.False(t, b.InBounds(2, 0))
}

func TestGridRoundTrip(t *testing.T) {
	grid := [][]string{{"c", "a"}, {"t", "s"}}
	b, err := NewBoardFromGrid(grid)
	assert.NoError(t, err)
	assert.Equal(t, grid, b.Grid())
}

func TestToDisplayText(t *testing.T) {
	b, err := NewBoardFromGrid([][]string{{"c", "a"}, {"t", "s"}})
	assert.NoError(t, err)
	text := b.ToDisplayText()
	assert.True(t, strings.Contains(text, "C A"))
	assert.True(t, strings.Contains(text, "T S"))
}

func TestReadCubeFile(t *testing.T) {
	cubes, err := ReadCubeFile("testdata/cubes.txt")
	assert.NoError(t, err)
	assert.Equal(t, 16, len(cubes))
	for _, cube := range cubes {
		assert.Equal(t, CubeSides, len(cube))
		assert.Equal(t, strings.ToLower(cube), cube)
	}
}

func TestReadCubeFileMissing(t *testing.T) {
	_, err := ReadCubeFile("/nonexistent/cubes.txt")
	assert.Error(t, err)
}

func TestRollBoard(t *testing.T) {
	cubes := []string{"aaaaaa", "bbbbbb", "cccccc", "dddddd"}
	b, err := rollBoard(2, cubes)
	assert.NoError(t, err)
	assert.Equal(t, 2, b.Dim())

	// Every cube is used exactly once, so the rolled letters are a
	// permutation of one face from each cube.
	seen := make(map[byte]int)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			seen[b.Letter(r, c)]++
		}
	}
	assert.Equal(t, map[byte]int{'a': 1, 'b': 1, 'c': 1, 'd': 1}, seen)
}

func TestRollBoardBoundaries(t *testing.T) {
	cubes := []string{"aaaaaa", "bbbbbb", "cccccc", "dddddd"}

	// size 2 with exactly size*size cubes is the smallest valid setup
	_, err := rollBoard(2, cubes)
	assert.NoError(t, err)

	_, err = rollBoard(1, cubes)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))

	_, err = rollBoard(3, cubes)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}

func TestNewRandomBoard(t *testing.T) {
	b, err := NewRandomBoard(4, "testdata/cubes.txt")
	assert.NoError(t, err)
	assert.Equal(t, 4, b.Dim())
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			letter := b.Letter(r, c)
			if letter < 'a' || letter > 'z' {
				t.Errorf("cell (%d, %d) holds %q, not a lowercase letter", r, c, letter)
			}
		}
	}
}
