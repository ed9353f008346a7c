// Package trie implements the prefix dictionary used by the Boggle
// solvers. Words are stored in a plain in-memory trie, which makes
// prefix queries cheap enough to prune board traversals with.
package trie

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Node is a single trie node. The path of letters from the root to a
// node spells a prefix; isWord marks the prefixes that are complete
// dictionary words. Nodes are owned exclusively by their dictionary and
// are read-only once loading finishes.
type Node struct {
	children map[byte]*Node
	isWord   bool
}

func newNode() *Node {
	return &Node{children: make(map[byte]*Node)}
}

// IsWord returns true if the path from the root to this node spells a
// complete dictionary word.
func (n *Node) IsWord() bool {
	return n.isWord
}

// Child returns the child node for the given letter, or nil.
func (n *Node) Child(letter byte) *Node {
	return n.children[letter]
}

// Dictionary is a case-insensitive prefix dictionary. The zero value is
// not usable; call New.
type Dictionary struct {
	root      *Node
	wordCount int
}

// New creates an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{root: newNode()}
}

// Load reads words from r, one per line, and inserts each into the
// trie. Words are lowercased on insert; there is no length filtering.
func (d *Dictionary) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		d.insert(word)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}
	log.Debug().Int("words", d.wordCount).Msg("loaded dictionary")
	return nil
}

// LoadFile opens filename and loads it with Load. An unreadable file is
// fatal to game setup; the error propagates to the caller.
func (d *Dictionary) LoadFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening word list %v: %w", filename, err)
	}
	defer file.Close()
	return d.Load(file)
}

func (d *Dictionary) insert(word string) {
	node := d.root
	for i := 0; i < len(word); i++ {
		letter := word[i]
		child := node.children[letter]
		if child == nil {
			child = newNode()
			node.children[letter] = child
		}
		node = child
	}
	if !node.isWord {
		node.isWord = true
		d.wordCount++
	}
}

// Traverse follows the trie edge-by-edge for each character of prefix,
// lowercasing as it goes. It returns the node reached, or nil as soon
// as any character has no matching child. The empty prefix returns the
// root.
func (d *Dictionary) Traverse(prefix string) *Node {
	node := d.root
	for i := 0; i < len(prefix); i++ {
		letter := lower(prefix[i])
		node = node.children[letter]
		if node == nil {
			return nil
		}
	}
	return node
}

// IsPrefix returns true if some dictionary word begins with prefix.
// The empty string is always a valid prefix.
func (d *Dictionary) IsPrefix(prefix string) bool {
	return d.Traverse(prefix) != nil
}

// Contains returns true if word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	node := d.Traverse(word)
	return node != nil && node.isWord
}

// WordCount returns the number of distinct words stored.
func (d *Dictionary) WordCount() int {
	return d.wordCount
}

// Each calls fn for every word in the dictionary in lexicographic
// order. A word is emitted before any of its extensions. Enumeration
// stops early if fn returns false. Each call restarts from the root.
func (d *Dictionary) Each(fn func(word string) bool) {
	d.walk(d.root, nil, fn)
}

func (d *Dictionary) walk(node *Node, prefix []byte, fn func(string) bool) bool {
	if node.isWord {
		if !fn(string(prefix)) {
			return false
		}
	}
	letters := make([]byte, 0, len(node.children))
	for letter := range node.children {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	for _, letter := range letters {
		if !d.walk(node.children[letter], append(prefix, letter), fn) {
			return false
		}
	}
	return true
}

// Words returns every word in the dictionary in lexicographic order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, d.wordCount)
	d.Each(func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
