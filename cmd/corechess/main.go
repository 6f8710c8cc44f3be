// Command corechess is the engine's command-line entry point: a perft
// correctness/benchmark runner and a small interactive play REPL.
// Grounded on the teacher's internal/perft.go flag-parsing main (depth,
// FEN, and CPU-profile flags), generalized into perft, divide and play
// subcommands, each parsing its own flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/profile"

	"github.com/silvanis/corechess"
	"github.com/silvanis/corechess/cli"
	"github.com/silvanis/corechess/internal/perft"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	corechess.InitEngine()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: corechess <perft|divide|play> [flags]")
		os.Exit(2)
	}

	switch os.Args[1] {
	case "perft":
		runPerft(os.Args[2:])
	case "divide":
		runDivide(os.Args[2:])
	case "play":
		runPlay(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		os.Exit(2)
	}
}

func runPerft(args []string) {
	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	depth := fs.Int("depth", 5, "perft depth")
	fen := fs.String("fen", startFEN, "starting position")
	cpuProfile := fs.Bool("cpuprofile", false, "enable CPU profiling")
	fs.Parse(args)

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	pos, err := corechess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	start := time.Now()
	nodes := perft.Count(pos, *depth)
	elapsed := time.Since(start)
	fmt.Printf("depth %d: %d nodes in %s (%.0f nps)\n", *depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}

func runDivide(args []string) {
	fs := flag.NewFlagSet("divide", flag.ExitOnError)
	depth := fs.Int("depth", 1, "divide depth")
	fen := fs.String("fen", startFEN, "starting position")
	fs.Parse(args)

	pos, err := corechess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	perft.Divide(os.Stdout, pos, *depth)
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	fen := fs.String("fen", startFEN, "starting position")
	moveTimeMs := fs.Int("movetime", 2000, "engine move time in milliseconds")
	fs.Parse(args)

	pos, err := corechess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := newPlayModel(pos, time.Duration(*moveTimeMs)*time.Millisecond)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type playModel struct {
	pos      *corechess.Position
	worker   *corechess.Worker
	tt       *corechess.TranspositionTable
	moveTime time.Duration
	input    textinput.Model
	status   string
}

func newPlayModel(pos *corechess.Position, moveTime time.Duration) playModel {
	tt := corechess.NewTranspositionTable(64)

	ti := textinput.New()
	ti.Placeholder = "e2e4"
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 10

	return playModel{
		pos:      pos,
		worker:   corechess.NewWorker(pos, tt, 128),
		tt:       tt,
		moveTime: moveTime,
		input:    ti,
		status:   "your move (e.g. e2e4), or 'q' to quit",
	}
}

func (m playModel) Init() tea.Cmd { return textinput.Blink }

func (m playModel) View() string {
	return cli.RenderBoard(m.pos) + "\n\n" + m.status + "\n" + m.input.View()
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m playModel) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	m.input.SetValue("")
	if text == "q" {
		return m, tea.Quit
	}

	move, ok := parseUserMove(m.pos, text)
	if !ok {
		m.status = fmt.Sprintf("illegal or unparseable move %q", text)
		return m, nil
	}
	if !m.pos.ApplyMove(move) {
		m.status = fmt.Sprintf("illegal move %q", text)
		return m, nil
	}

	result := corechess.IterativeDeepen(context.Background(), m.worker, 64, m.moveTime, true)
	if result.Move == corechess.NullMove {
		m.status = "no legal reply; game over"
		return m, nil
	}
	m.pos.ApplyMove(result.Move)
	m.status = fmt.Sprintf("engine plays %s (depth %d, score %d)", result.Move.String(), result.Depth, result.Score)
	return m, nil
}

// parseUserMove resolves a long-algebraic string (e2e4, e7e8q) against
// the currently legal moves, since the user's text carries no move kind.
func parseUserMove(pos *corechess.Position, text string) (corechess.Move, bool) {
	if len(text) < 4 {
		return corechess.NullMove, false
	}
	list := corechess.NewMoveStack(1).Push()
	corechess.GenerateMoves(pos, corechess.ModeAll, list)
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.String() == text {
			return m, true
		}
	}
	return corechess.NullMove, false
}
