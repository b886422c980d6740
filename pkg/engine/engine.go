package engine

import (
	"errors"
	"fmt"
	"time"

	. "github.com/ChizhovVadim/TwoPly/pkg/common"
)

var ErrDepth = errors.New("search depth out of range")

type Engine struct {
	Options Options
}

type AnalysisResult struct {
	BestMoves       []Move
	Score           Score
	EndScore        int
	OpponentInCheck bool
	EngineNoMoves   bool
	SimMoves        int
	ValidMoves      int
}

func NewEngine(options Options) *Engine {
	return &Engine{Options: options}
}

// Search returns the moves of the engine side that are best in the worst
// case when depth engine moves, each answered by the opponent, are
// explored. The defended flag of every returned move is recomputed.
func (e *Engine) Search(gs *GameState, depth int) (AnalysisResult, error) {
	if depth < 0 || depth > MaxDepth {
		return AnalysisResult{}, fmt.Errorf("%w: %d", ErrDepth, depth)
	}
	var start = time.Now()
	var result = e.analyse(gs, depth, true, window{})
	for i := range result.BestMoves {
		result.BestMoves[i] = gs.WithDefended(result.BestMoves[i])
	}
	e.Options.Logger.Info().
		Int("depth", depth).
		Int("bestMoves", len(result.BestMoves)).
		Str("score", result.Score.String()).
		Bool("mate", result.Score.IsMate()).
		Bool("engineNoMoves", result.EngineNoMoves).
		Int("simMoves", result.SimMoves).
		Int("validMoves", result.ValidMoves).
		Dur("elapsed", time.Since(start)).
		Msg("search done")
	return result, nil
}

func (r *AnalysisResult) IsMate() bool {
	return r.Score.IsMate()
}
