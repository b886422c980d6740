package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ChizhovVadim/TwoPly/pkg/common"
	"github.com/ChizhovVadim/TwoPly/pkg/development"
	"github.com/ChizhovVadim/TwoPly/pkg/engine"
	"github.com/ChizhovVadim/TwoPly/pkg/fen"
)

var (
	errCommandNotFound = errors.New("command not found")
	errGameOver        = errors.New("a king was captured, game over")
	errKingLeftEnPrise = errors.New("move leaves own king capturable")
	errKingEnPrise     = errors.New("opponent king is already capturable")
)

type Config struct {
	Depth        int
	Orientation  common.Orientation
	Castling     bool
	RandomFactor float64
	Seed         int64
}

// Game plays the engine against moves typed for the opponent.
type Game struct {
	config  Config
	engine  *engine.Engine
	chooser *development.Chooser
	options []Option
	state   common.GameState
	out     io.Writer
}

func NewGame(config Config, eng *engine.Engine, out io.Writer) *Game {
	var g = &Game{
		config:  config,
		engine:  eng,
		chooser: development.NewChooser(config.RandomFactor, config.Seed),
		state:   common.StartPosition(config.Castling),
		out:     out,
	}
	g.options = []Option{
		&IntOption{OptionName: "Depth", Min: 0, Max: engine.MaxDepth, Value: &g.config.Depth},
		&BoolOption{OptionName: "Pruning", Value: &eng.Options.Pruning},
		&BoolOption{OptionName: "Threading", Value: &eng.Options.Threading},
		&IntOption{OptionName: "Threads", Min: 1, Max: 1024, Value: &eng.Options.Threads},
		&FloatOption{OptionName: "RandomFactor", Min: 0, Max: 1, Value: &g.chooser.RandomFactor},
	}
	return g
}

func (g *Game) State() common.GameState {
	return g.state
}

func (g *Game) SetState(gs common.GameState) {
	g.state = gs
}

func (g *Game) Handle(ctx context.Context, commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(fields []string) error

	switch commandName {
	case "start":
		h = g.startCommand
	case "layout":
		h = g.layoutCommand
	case "fen":
		h = g.fenCommand
	case "move":
		h = g.moveCommand
	case "go":
		h = g.goCommand
	case "board":
		h = g.boardCommand
	case "moves":
		h = g.movesCommand
	case "depth":
		h = g.depthCommand
	case "bench":
		h = g.benchCommand
	case "options":
		h = g.optionsCommand
	case "set":
		h = g.setCommand
	}

	if h == nil {
		return fmt.Errorf("%w: %v", errCommandNotFound, commandName)
	}

	return h(fields)
}

func (g *Game) startCommand(fields []string) error {
	g.state = common.StartPosition(g.config.Castling)
	return g.boardCommand(nil)
}

func (g *Game) layoutCommand(fields []string) error {
	if len(fields) != 1 {
		return errors.New("usage: layout <file>")
	}
	var data, err = os.ReadFile(fields[0])
	if err != nil {
		return err
	}
	gs, err := common.NewGameStateFromLayout(string(data), g.config.Orientation, g.config.Castling)
	if err != nil {
		return err
	}
	g.state = gs
	return g.boardCommand(nil)
}

func (g *Game) fenCommand(fields []string) error {
	var gs, orientation, err = fen.Parse(strings.Join(fields, " "))
	if err != nil {
		return err
	}
	g.state = gs
	g.config.Orientation = orientation
	return g.boardCommand(nil)
}

func (g *Game) moveCommand(fields []string) error {
	if !g.state.KingsAlive {
		return errGameOver
	}
	var m, err = common.ParseMove(&g.state, strings.Join(fields, " "), true, g.config.Orientation)
	if err != nil {
		return err
	}
	var child common.GameState
	g.state.MakeMove(m, &child)
	if child.KingsAlive && child.KingCapturable(false) {
		return fmt.Errorf("%w: %v", common.ErrIllegalMove, errKingLeftEnPrise)
	}
	g.state = child
	return g.boardCommand(nil)
}

func (g *Game) goCommand(fields []string) error {
	if !g.state.KingsAlive {
		return errGameOver
	}
	var depth = g.config.Depth
	if len(fields) > 0 {
		var d, err = strconv.Atoi(fields[0])
		if err != nil {
			return err
		}
		depth = d
	}
	if g.state.KingCapturable(false) {
		return errKingEnPrise
	}

	var start = time.Now()
	var result, err = g.engine.Search(&g.state, depth)
	if err != nil {
		return err
	}
	for _, m := range result.BestMoves {
		fmt.Fprintf(g.out, "'%v: %v'\n", m.SideName(), m.Notation(g.config.Orientation))
	}

	if result.IsMate() {
		fmt.Fprintln(g.out, "Checkmate found!")
	} else if result.EngineNoMoves {
		fmt.Fprintln(g.out, "No moves found, game over?")
		return nil
	} else {
		fmt.Fprintf(g.out, "Best score: %v\n", result.EndScore)
	}
	if len(result.BestMoves) == 0 {
		return nil
	}
	fmt.Fprintf(g.out, "Analysis found %v moves\n", len(result.BestMoves))

	var bestMove, dev = g.chooser.FindBestDevelopment(&g.state, result.BestMoves)
	fmt.Fprintf(g.out, "Best dev: %.3f\n", dev)
	var child common.GameState
	g.state.MakeMove(bestMove, &child)
	g.state = child

	fmt.Fprintf(g.out, "'%v: %v' selected from %v valid moves.\n",
		bestMove.SideName(), bestMove.Notation(g.config.Orientation), result.ValidMoves)
	var elapsed = time.Since(start)
	fmt.Fprintf(g.out, "Simulated %v moves, took %v seconds or %v ms\n",
		result.SimMoves, int(elapsed.Seconds()), elapsed.Milliseconds())
	return g.boardCommand(nil)
}

func (g *Game) boardCommand(fields []string) error {
	fmt.Fprint(g.out, common.FormatLayout(&g.state.Board, g.config.Orientation))
	fmt.Fprintf(g.out, "Score: %v\n", g.state.Score)
	return nil
}

func (g *Game) movesCommand(fields []string) error {
	var enemy = len(fields) > 0 && fields[0] == "opponent"
	for _, m := range g.state.PossibleMoves(enemy) {
		fmt.Fprintln(g.out, m.Notation(g.config.Orientation))
	}
	return nil
}

func (g *Game) depthCommand(fields []string) error {
	if len(fields) != 1 {
		return errors.New("usage: depth <n>")
	}
	return g.options[0].Set(fields[0])
}

var benchFens = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"4k2r/1p3pp1/2n5/3P4/6B1/2N5/PP3PPP/4K2R b Kk - 0 1",
}

func (g *Game) benchCommand(fields []string) error {
	var start = time.Now()
	var simMoves = 0
	for _, s := range benchFens {
		var gs, _, err = fen.Parse(s)
		if err != nil {
			return err
		}
		result, err := g.engine.Search(&gs, g.config.Depth)
		if err != nil {
			return err
		}
		simMoves += result.SimMoves
	}
	var elapsed = time.Since(start)
	fmt.Fprintln(g.out, "Time", elapsed)
	fmt.Fprintln(g.out, "SimMoves", simMoves)
	fmt.Fprintln(g.out, "kMPS", int64(simMoves)/(elapsed.Milliseconds()+1))
	return nil
}

func (g *Game) optionsCommand(fields []string) error {
	for _, option := range g.options {
		fmt.Fprintln(g.out, option.String())
	}
	return nil
}

func (g *Game) setCommand(fields []string) error {
	if len(fields) != 2 {
		return errors.New("usage: set <option> <value>")
	}
	for _, option := range g.options {
		if strings.EqualFold(option.Name(), fields[0]) {
			return option.Set(fields[1])
		}
	}
	return errors.New("unhandled option")
}
