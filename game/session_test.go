package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tommykhoi/submitboggle-tommykhoi/board"
	"github.com/tommykhoi/submitboggle-tommykhoi/trie"
)

func newSession(t *testing.T, words ...string) *Session {
	t.Helper()
	d := trie.New()
	err := d.Load(strings.NewReader(strings.Join(words, "\n")))
	assert.NoError(t, err)
	return NewSession(d)
}

func TestAddWordScoring(t *testing.T) {
	s := newSession(t, "cat", "cats", "stack", "dogs")
	assert.NoError(t, s.SetBoard([][]string{{"c", "a"}, {"t", "s"}}))

	assert.Equal(t, 1, s.AddWord("cats"))
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, []string{"cats"}, s.FoundWords())

	// claimed words only score once
	assert.Equal(t, 0, s.AddWord("cats"))
	assert.Equal(t, 0, s.AddWord("CATS"))
	assert.Equal(t, 1, s.Score())

	// too short, not in the dictionary, not on the board
	assert.Equal(t, 0, s.AddWord("cat"))
	assert.Equal(t, 0, s.AddWord("acts"))
	assert.Equal(t, 0, s.AddWord("stack"))
	assert.Equal(t, 0, s.AddWord("dogs"))
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, []string{"cats"}, s.FoundWords())
}

func TestLastAddedPath(t *testing.T) {
	s := newSession(t, "cats")
	assert.NoError(t, s.SetBoard([][]string{{"c", "a"}, {"t", "s"}}))

	assert.Nil(t, s.LastAddedPath())
	assert.Equal(t, 1, s.AddWord("cats"))
	assert.Equal(t, []board.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	}, s.LastAddedPath())

	// a failed claim leaves the last path alone
	assert.Equal(t, 0, s.AddWord("cats"))
	assert.NotNil(t, s.LastAddedPath())
}

func TestSetBoardResetsRound(t *testing.T) {
	s := newSession(t, "cats")
	assert.NoError(t, s.SetBoard([][]string{{"c", "a"}, {"t", "s"}}))
	assert.Equal(t, 1, s.AddWord("cats"))

	assert.NoError(t, s.SetBoard([][]string{{"s", "t"}, {"a", "c"}}))
	assert.Equal(t, 0, s.Score())
	assert.Empty(t, s.FoundWords())
	assert.Nil(t, s.LastAddedPath())

	// the word can be claimed again on the new board:
	// c(1,1) a(1,0) t(0,1) s(0,0) are all mutually adjacent
	assert.Equal(t, 1, s.AddWord("cats"))
}

func TestAddWordWithoutBoard(t *testing.T) {
	s := newSession(t, "cats")
	assert.Equal(t, 0, s.AddWord("cats"))
	assert.Equal(t, 0, s.Score())
	assert.Nil(t, s.SolveAll())
}

func TestSolveAll(t *testing.T) {
	s := newSession(t, "cat", "cats", "tacs", "scat", "dogs")
	assert.NoError(t, s.SetBoard([][]string{{"c", "a"}, {"t", "s"}}))

	// every 4-letter arrangement of c,a,t,s is adjacency-valid on a
	// 2x2 board; "cat" is too short and "dogs" is absent
	assert.Equal(t, []string{"cats", "scat", "tacs"}, s.SolveAll())
}

func TestStartGame(t *testing.T) {
	s := newSession(t, "cats")
	assert.NoError(t, s.StartGame(4, "testdata/cubes.txt"))
	assert.NotNil(t, s.Board())
	assert.Equal(t, 4, s.Board().Dim())

	err := s.StartGame(1, "testdata/cubes.txt")
	assert.True(t, errors.Is(err, board.ErrInvalidDimensions))

	// 16 cubes cannot fill a 5x5 board
	err = s.StartGame(5, "testdata/cubes.txt")
	assert.True(t, errors.Is(err, board.ErrInvalidDimensions))

	err = s.StartGame(4, "testdata/missing.txt")
	assert.Error(t, err)
}
