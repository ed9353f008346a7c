// Package shell provides the interactive console for playing and
// solving Boggle boards.
package shell

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/tommykhoi/submitboggle-tommykhoi/board"
	"github.com/tommykhoi/submitboggle-tommykhoi/config"
	"github.com/tommykhoi/submitboggle-tommykhoi/game"
	"github.com/tommykhoi/submitboggle-tommykhoi/trie"
)

type ShellController struct {
	l       *readline.Instance
	cfg     *config.Config
	session *game.Session
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new [size] - roll a new random board (default size from config)\n")
	io.WriteString(w, "set <row> <row> ... - set the board directly, e.g. set ca ts\n")
	io.WriteString(w, "show - show the current board\n")
	io.WriteString(w, "add <word> - claim a word and score it\n")
	io.WriteString(w, "find <word> - show the path of a word on the board\n")
	io.WriteString(w, "solve - list every scorable word on the board\n")
	io.WriteString(w, "solve brute - same, without prefix pruning (slow on big boards)\n")
	io.WriteString(w, "words - list the words claimed this round\n")
	io.WriteString(w, "score - show the current score\n")
	io.WriteString(w, "exit - leave\n")
}

// NewShellController creates the readline-backed shell over a loaded
// dictionary.
func NewShellController(cfg *config.Config, dict *trie.Dictionary) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mboggle>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg, session: game.NewSession(dict)}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

func (sc *ShellController) newGame(fields []string) error {
	size := sc.cfg.BoardSize
	if len(fields) > 1 {
		var err error
		size, err = strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("badly formatted board size %v", fields[1])
		}
	}
	if err := sc.session.StartGame(size, sc.cfg.CubeFile); err != nil {
		return err
	}
	sc.showBoard()
	return nil
}

func (sc *ShellController) setBoard(fields []string) error {
	rows := fields[1:]
	if len(rows) == 0 {
		return errors.New("set needs one argument per board row, e.g. set ca ts")
	}
	grid := make([][]string, len(rows))
	for r, row := range rows {
		grid[r] = strings.Split(row, "")
	}
	if err := sc.session.SetBoard(grid); err != nil {
		return err
	}
	sc.showBoard()
	return nil
}

func (sc *ShellController) showBoard() {
	if sc.session.Board() == nil {
		sc.showMessage("no board in play; start one with `new` or `set`")
		return
	}
	sc.showMessage(sc.session.Board().ToDisplayText())
}

func (sc *ShellController) addWord(fields []string) error {
	if len(fields) != 2 {
		return errors.New("add needs a single word")
	}
	if sc.session.Board() == nil {
		return errors.New("please start a game first with `new` or `set`")
	}
	score := sc.session.AddWord(fields[1])
	if score == 0 {
		sc.showMessage(fmt.Sprintf("%v does not score", strings.ToLower(fields[1])))
		return nil
	}
	sc.showMessage(fmt.Sprintf("%v scores %d (total %d)",
		strings.ToLower(fields[1]), score, sc.session.Score()))
	sc.showMessage("path: " + pathString(sc.session.LastAddedPath()))
	return nil
}

func (sc *ShellController) findWord(fields []string) error {
	if len(fields) != 2 {
		return errors.New("find needs a single word")
	}
	if sc.session.Board() == nil {
		return errors.New("please start a game first with `new` or `set`")
	}
	path := sc.session.Searcher().Locate(fields[1])
	if path == nil {
		sc.showMessage(fmt.Sprintf("%v is not on the board", strings.ToLower(fields[1])))
		return nil
	}
	sc.showMessage("path: " + pathString(path))
	return nil
}

func (sc *ShellController) solve(fields []string) error {
	if sc.session.Board() == nil {
		return errors.New("please start a game first with `new` or `set`")
	}
	brute := len(fields) > 1 && fields[1] == "brute"
	var words []string
	if brute {
		words = lo.Keys(sc.session.Searcher().BoardDrivenSearch())
		sort.Strings(words)
	} else {
		words = sc.session.SolveAll()
	}
	if len(words) == 0 {
		sc.showMessage("no scorable words on this board")
		return nil
	}
	sc.showMessage(strings.Join(words, " "))
	sc.showMessage(fmt.Sprintf("%d words", len(words)))
	return nil
}

func pathString(path []board.Position) string {
	strs := lo.Map(path, func(p board.Position, _ int) string {
		return p.String()
	})
	return strings.Join(strs, " ")
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()

readlineLoop:
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields, err := shellquote.Split(line)
		if err != nil {
			sc.showError(err)
			continue
		}
		switch fields[0] {
		case "bye", "exit", "quit":
			break readlineLoop
		case "help":
			usage(sc.l.Stderr())
		case "new":
			if err := sc.newGame(fields); err != nil {
				sc.showError(err)
			}
		case "set":
			if err := sc.setBoard(fields); err != nil {
				sc.showError(err)
			}
		case "show":
			sc.showBoard()
		case "add":
			if err := sc.addWord(fields); err != nil {
				sc.showError(err)
			}
		case "find":
			if err := sc.findWord(fields); err != nil {
				sc.showError(err)
			}
		case "solve":
			if err := sc.solve(fields); err != nil {
				sc.showError(err)
			}
		case "words":
			words := sc.session.FoundWords()
			if len(words) == 0 {
				sc.showMessage("no words claimed yet")
			} else {
				sc.showMessage(strings.Join(words, " "))
			}
		case "score":
			sc.showMessage(strconv.Itoa(sc.session.Score()))
		default:
			log.Debug().Str("command", fields[0]).Msg("unrecognized command")
			sc.showMessage("unrecognized command; try `help`")
		}
	}
	log.Debug().Msg("exiting shell loop")
}
