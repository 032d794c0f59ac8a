package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/kula-app/binarysearch/internal/config"
	"github.com/kula-app/binarysearch/internal/highlight"
	"github.com/kula-app/binarysearch/internal/numbers"
)

// Messages written to the player
const (
	PromptMessage   = "What number do you want to search for in the list below? Enter 'q' to quit."
	InputPrompt     = "Number: "
	FoundFormat     = "The number %d was found at index %d."
	NotFoundFormat  = "ERROR: The number %d was not found in the list of numbers."
	ParseErrMessage = "ERROR: INPUT MUST BE AN INTEGER!"
	FarewellMessage = "Thanks for playing!"

	quitCommand = "q"
)

var (
	// ErrInputClosed is returned when input ends before the player quits
	ErrInputClosed = errors.New("input closed before quit")

	// ErrMissingStream is returned by Run when Input or Output was not set
	ErrMissingStream = errors.New("input and output are required")
)

// State is a state of the game loop
type State int

const (
	// StatePrompting shows a fresh array and waits for a target
	StatePrompting State = iota
	// StateDone ends the loop
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is the result of handling a single line of input
type Outcome struct {
	Kind   OutcomeKind
	Target int
	Index  int
}

// OutcomeKind classifies how a line of input was handled
type OutcomeKind int

const (
	// OutcomeQuit ends the game with a farewell
	OutcomeQuit OutcomeKind = iota
	// OutcomeFound reports the index of the target
	OutcomeFound
	// OutcomeNotFound reports a highlighted miss
	OutcomeNotFound
	// OutcomeParseError reports highlighted input that is not an integer
	OutcomeParseError
)

// Options holds the dependencies of a Game
type Options struct {
	// Input and Output are required
	Input  io.ReadCloser
	Output io.Writer

	// The remaining fields fall back to defaults when nil
	Source      numbers.Source
	Highlighter highlight.Highlighter
	Logger      *slog.Logger
	Config      *config.Config
}

// Game runs the interactive search loop
type Game struct {
	input       io.ReadCloser
	output      io.Writer
	source      numbers.Source
	highlighter highlight.Highlighter
	logger      *slog.Logger
	config      *config.Config
}

// New creates a new game. Input and Output are required by Run; the other
// dependencies fall back to defaults.
func New(opts Options) *Game {
	g := &Game{
		input:       opts.Input,
		output:      opts.Output,
		source:      opts.Source,
		highlighter: opts.Highlighter,
		logger:      opts.Logger,
		config:      opts.Config,
	}
	if g.source == nil {
		g.source = numbers.NewSource()
	}
	if g.highlighter == nil {
		g.highlighter = highlight.NewANSI()
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}
	if g.config == nil {
		g.config = config.DefaultConfig()
	}
	return g
}

// Run plays rounds until the player quits, the input ends or ctx is canceled.
// The input is closed on return.
func (g *Game) Run(ctx context.Context) (err error) {
	if g.input == nil || g.output == nil {
		if g.input != nil {
			_ = g.input.Close()
		}
		return ErrMissingStream
	}
	defer func() {
		if closeErr := g.input.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close input: %w", closeErr)
		}
	}()

	if err := g.config.Validate(); err != nil {
		return err
	}

	reader := bufio.NewReader(g.input)
	state := StatePrompting
	rounds := 0

	for state == StatePrompting {
		if err := ctx.Err(); err != nil {
			return err
		}

		values, err := g.newRound()
		if err != nil {
			return err
		}
		rounds++

		line, err := readLine(reader)
		if err != nil {
			return err
		}

		var outcome Outcome
		state, outcome = g.Step(line, values)
		if err := g.report(outcome); err != nil {
			return err
		}
	}

	g.logger.Debug("game finished", "rounds", rounds)
	return nil
}

// newRound generates and sorts a fresh array, then prompts for a target
func (g *Game) newRound() ([]int, error) {
	values, err := numbers.Populate(g.source, g.config.MinNum, g.config.MaxNum, g.config.ArraySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate numbers: %w", err)
	}
	slices.Sort(values)

	g.logger.Debug("array generated", "values", values)

	if _, err := fmt.Fprintf(g.output, "%s\n%s %s", PromptMessage, FormatValues(values), InputPrompt); err != nil {
		return nil, fmt.Errorf("failed to write prompt: %w", err)
	}
	return values, nil
}

// Step handles one line of input against a sorted array and returns the next state
func (g *Game) Step(line string, values []int) (State, Outcome) {
	if strings.EqualFold(line, quitCommand) {
		return StateDone, Outcome{Kind: OutcomeQuit}
	}

	target, err := parseTarget(line)
	if err != nil {
		g.logger.Debug("input rejected", "input", line, "error", err)
		return StatePrompting, Outcome{Kind: OutcomeParseError}
	}

	index := numbers.BinarySearch(values, target)
	g.logger.Debug("search completed", "target", target, "index", index)
	if index == numbers.NotFound {
		return StatePrompting, Outcome{Kind: OutcomeNotFound, Target: target, Index: index}
	}
	return StatePrompting, Outcome{Kind: OutcomeFound, Target: target, Index: index}
}

// report writes the message for an outcome
func (g *Game) report(o Outcome) error {
	var msg string
	switch o.Kind {
	case OutcomeQuit:
		msg = FarewellMessage
	case OutcomeFound:
		msg = fmt.Sprintf(FoundFormat, o.Target, o.Index)
	case OutcomeNotFound:
		msg = g.highlighter.Highlight(fmt.Sprintf(NotFoundFormat, o.Target))
	case OutcomeParseError:
		msg = g.highlighter.Highlight(ParseErrMessage)
	}

	if _, err := fmt.Fprintln(g.output, msg); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// FormatValues renders values as a bracketed, comma separated list
func FormatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// parseTarget accepts a signed 32-bit integer of ASCII digits with no surrounding whitespace
func parseTarget(line string) (int, error) {
	n, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// readLine reads one line without its line terminator.
// A final line without a terminator is still returned.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
