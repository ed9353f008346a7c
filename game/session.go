// Package game tracks one Boggle round: the board in play, the words
// claimed so far, and the running score.
package game

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/tommykhoi/submitboggle-tommykhoi/board"
	"github.com/tommykhoi/submitboggle-tommykhoi/solver"
	"github.com/tommykhoi/submitboggle-tommykhoi/trie"
)

// Session is one round of play against a fixed dictionary. A new board
// (random or injected) resets the claimed words and score.
type Session struct {
	dict     *trie.Dictionary
	board    *board.Board
	searcher *solver.Searcher
	words    []string
	claimed  map[string]bool
	lastPath []board.Position
}

// NewSession creates a session over a loaded dictionary. No board is
// in play until StartGame or SetBoard is called.
func NewSession(dict *trie.Dictionary) *Session {
	return &Session{dict: dict}
}

// StartGame rolls a random size x size board from the cube file and
// starts a fresh round on it.
func (s *Session) StartGame(size int, cubeFile string) error {
	b, err := board.NewRandomBoard(size, cubeFile)
	if err != nil {
		return err
	}
	s.reset(b)
	log.Debug().Int("size", size).Msg("started new game")
	return nil
}

// SetBoard injects a board directly and starts a fresh round on it.
// Used for deterministic play and tests.
func (s *Session) SetBoard(grid [][]string) error {
	b, err := board.NewBoardFromGrid(grid)
	if err != nil {
		return err
	}
	s.reset(b)
	return nil
}

func (s *Session) reset(b *board.Board) {
	s.board = b
	s.searcher = solver.NewSearcher(b, s.dict)
	s.words = nil
	s.claimed = make(map[string]bool)
	s.lastPath = nil
}

// Board returns the board in play, or nil before the first round.
func (s *Session) Board() *board.Board {
	return s.board
}

// AddWord claims a word and returns its score. A word scores only if
// it is long enough, has not been claimed this round, is in the
// dictionary, and lies on the board as a simple path; otherwise the
// score is 0 and nothing changes.
func (s *Session) AddWord(word string) int {
	if s.board == nil {
		return 0
	}
	word = strings.ToLower(word)
	if len(word) <= solver.MinScorableLength || s.claimed[word] || !s.dict.Contains(word) {
		return 0
	}
	path := s.searcher.Locate(word)
	if path == nil {
		return 0
	}
	s.lastPath = path
	s.words = append(s.words, word)
	s.claimed[word] = true
	return len(word) - solver.MinScorableLength
}

// LastAddedPath returns the board path of the most recently claimed
// word, or nil if none has been claimed this round.
func (s *Session) LastAddedPath() []board.Position {
	return s.lastPath
}

// FoundWords returns the words claimed this round, in claim order.
func (s *Session) FoundWords() []string {
	return append([]string(nil), s.words...)
}

// Score returns the total score of the claimed words.
func (s *Session) Score() int {
	return lo.SumBy(s.words, func(w string) int {
		return len(w) - solver.MinScorableLength
	})
}

// SolveAll returns every scorable dictionary word on the board, sorted.
func (s *Session) SolveAll() []string {
	if s.board == nil {
		return nil
	}
	words := lo.Keys(s.searcher.DictionaryDrivenSearch())
	sort.Strings(words)
	return words
}

// Searcher exposes the underlying searcher for the round, or nil
// before the first round.
func (s *Session) Searcher() *solver.Searcher {
	return s.searcher
}
