// Package solver implements the board traversal algorithms: locating a
// single word's path, and the two exhaustive searches (dictionary-
// driven with prefix pruning, and board-driven with only a depth
// cutoff) that enumerate every word present on the board.
package solver

import (
	"strings"

	"github.com/tommykhoi/submitboggle-tommykhoi/board"
	"github.com/tommykhoi/submitboggle-tommykhoi/trie"
)

// MinScorableLength is the word-length threshold for scoring. A word
// scores its length minus this value, so words must be strictly longer
// than it to count.
const MinScorableLength = 3

// Searcher runs word searches over a board with a prefix dictionary.
// It borrows the board and dictionary; both must stay unchanged for
// the duration of any search. Returned paths and word sets are freshly
// allocated and safe to retain.
type Searcher struct {
	board *board.Board
	dict  *trie.Dictionary
}

// NewSearcher creates a Searcher over the given board and dictionary.
func NewSearcher(b *board.Board, d *trie.Dictionary) *Searcher {
	return &Searcher{board: b, dict: d}
}

// Locate finds a path spelling word on the board: a sequence of
// distinct, 8-directionally adjacent cells, one per letter, in order.
// Start cells are tried in row-major order and neighbors in the fixed
// board.Neighbors order, so the same board always yields the same
// path. It returns nil if the word is not on the board.
func (s *Searcher) Locate(word string) []board.Position {
	word = strings.ToLower(word)
	if word == "" {
		return nil
	}
	dim := s.board.Dim()
	path := make([]board.Position, 0, len(word))
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			if found := s.locate(r, c, 0, word, path); found != nil {
				return found
			}
		}
	}
	return nil
}

func (s *Searcher) locate(row, col, idx int, word string, path []board.Position) []board.Position {
	if idx == len(word) {
		out := make([]board.Position, len(path))
		copy(out, path)
		return out
	}
	if !s.board.InBounds(row, col) || onPath(path, row, col) {
		return nil
	}
	if s.board.Letter(row, col) != word[idx] {
		return nil
	}
	path = append(path, board.Position{Row: row, Col: col})
	for _, d := range board.Neighbors {
		if found := s.locate(row+d.Row, col+d.Col, idx+1, word, path); found != nil {
			return found
		}
	}
	return nil
}

func onPath(path []board.Position, row, col int) bool {
	for _, p := range path {
		if p.Row == row && p.Col == col {
			return true
		}
	}
	return false
}

// DictionaryDrivenSearch finds every scorable dictionary word present
// on the board as a simple path. It prunes a branch as soon as the
// accumulated string is not a valid prefix, which bounds the
// exploration to the dictionary's branching factor instead of the
// board's raw 8^n fan-out.
func (s *Searcher) DictionaryDrivenSearch() map[string]bool {
	found := make(map[string]bool)
	s.eachStart(func(r, c int, current []byte, visited [][]bool) {
		s.dictionaryDFS(r, c, current, visited, found)
	})
	return found
}

func (s *Searcher) dictionaryDFS(row, col int, current []byte, visited [][]bool, found map[string]bool) {
	if !s.dict.IsPrefix(string(current)) {
		return
	}
	if len(current) > MinScorableLength && s.dict.Contains(string(current)) {
		found[string(current)] = true
	}
	for _, d := range board.Neighbors {
		nr, nc := row+d.Row, col+d.Col
		if s.board.InBounds(nr, nc) && !visited[nr][nc] {
			visited[nr][nc] = true
			s.dictionaryDFS(nr, nc, append(current, s.board.Letter(nr, nc)), visited, found)
			visited[nr][nc] = false
		}
	}
}

// BoardDrivenSearch finds the same word set as DictionaryDrivenSearch
// but without prefix pruning: it explores every simple path, checking
// full membership at each step, and only stops extending a path once
// it is longer than the number of board cells. It exists to show the
// cost of searching without the trie; prefer the dictionary-driven
// variant.
func (s *Searcher) BoardDrivenSearch() map[string]bool {
	found := make(map[string]bool)
	maxLen := s.board.Dim() * s.board.Dim()
	s.eachStart(func(r, c int, current []byte, visited [][]bool) {
		s.boardDFS(r, c, current, visited, found, maxLen)
	})
	return found
}

func (s *Searcher) boardDFS(row, col int, current []byte, visited [][]bool, found map[string]bool, maxLen int) {
	if len(current) > MinScorableLength && s.dict.Contains(string(current)) {
		found[string(current)] = true
	}
	if len(current) > maxLen {
		return
	}
	for _, d := range board.Neighbors {
		nr, nc := row+d.Row, col+d.Col
		if s.board.InBounds(nr, nc) && !visited[nr][nc] {
			visited[nr][nc] = true
			s.boardDFS(nr, nc, append(current, s.board.Letter(nr, nc)), visited, found, maxLen)
			visited[nr][nc] = false
		}
	}
}

// eachStart seeds a depth-first exploration at every board cell. The
// visited grid is shared across starts; each DFS unmarks every cell it
// marks before returning, so sibling branches never see each other's
// cells.
func (s *Searcher) eachStart(dfs func(r, c int, current []byte, visited [][]bool)) {
	dim := s.board.Dim()
	visited := make([][]bool, dim)
	for i := range visited {
		visited[i] = make([]bool, dim)
	}
	current := make([]byte, 0, dim*dim)
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			visited[r][c] = true
			dfs(r, c, append(current, s.board.Letter(r, c)), visited)
			visited[r][c] = false
		}
	}
}
