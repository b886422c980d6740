package engine

import (
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	. "github.com/ChizhovVadim/TwoPly/pkg/common"
)

var (
	errDeadKing       = errors.New("search entered a position without both kings")
	errKingEnPrise    = errors.New("opponent king capturable at the root")
	errEmptyBestMoves = errors.New("legal moves exist but none was kept")
)

// window bounds a node's score in the node's own digit space. A zero length
// bound is open. Values below lower may be reported as any value below
// lower, values at or above upper as any value at or above upper.
type window struct {
	lower Score
	upper Score
}

type candidateResult struct {
	worst    Score
	endScore int
	simMoves int
	valid    bool
}

func (e *Engine) analyse(gs *GameState, depth int, root bool, w window) AnalysisResult {
	if !gs.KingsAlive {
		panic(errDeadKing)
	}

	if depth == 0 {
		return AnalysisResult{
			Score:    leafScore(gs.Score),
			EndScore: gs.Score,
		}
	}

	var engineMoves = gs.PossibleMoves(false)
	var children = make([]GameState, len(engineMoves))
	var simMoves = 0
	for i := range engineMoves {
		var child = &children[i]
		gs.MakeMove(engineMoves[i], child)
		simMoves++
		if !child.KingsAlive {
			if root {
				panic(errKingEnPrise)
			}
			return AnalysisResult{
				Score:           leafScore(child.Score),
				EndScore:        child.Score,
				OpponentInCheck: true,
				SimMoves:        simMoves,
			}
		}
	}

	var best = zeroScore(depth)
	var bestMoves []Move
	var endScore = 0
	var validMoves = 0
	var floor = best
	if e.Options.Pruning && w.lower.Len() != 0 {
		floor = maxScore(floor, w.lower.prefix(depth))
	}
	var norm = normalize(gs.Score)
	var start = time.Now()

	for i := range engineMoves {
		var c = e.evaluateCandidate(&children[i], depth, root, floor)
		simMoves += c.simMoves
		if root {
			e.logProgress(i+1, len(engineMoves), start)
		}
		if !c.valid {
			continue
		}
		validMoves++

		var cmp = c.worst.Compare(best)
		if cmp < 0 {
			continue
		}
		if cmp > 0 {
			best = c.worst
			bestMoves = bestMoves[:0]
			endScore = c.endScore
			floor = maxScore(floor, best)
		}
		if root {
			bestMoves = append(bestMoves, engineMoves[i])
		}

		if e.Options.Pruning && w.upper.Len() != 0 &&
			!best.append(norm).Less(w.upper) {
			break
		}
	}

	var engineNoMoves = validMoves == 0
	if root && !engineNoMoves && len(bestMoves) == 0 {
		panic(errEmptyBestMoves)
	}

	var result = AnalysisResult{
		Score:         best.append(norm),
		EndScore:      endScore,
		EngineNoMoves: engineNoMoves,
		SimMoves:      simMoves,
		ValidMoves:    validMoves,
	}
	if root {
		result.BestMoves = bestMoves
	}
	return result
}

// evaluateCandidate scores one engine move by the opponent's best reply.
func (e *Engine) evaluateCandidate(child *GameState, depth int, root bool, floor Score) candidateResult {
	var replyMoves = child.PossibleMoves(true)
	var replies = make([]GameState, len(replyMoves))
	var result candidateResult
	for i := range replyMoves {
		child.MakeMove(replyMoves[i], &replies[i])
		result.simMoves++
		if !replies[i].KingsAlive {
			// the engine move left its own king capturable
			return result
		}
	}
	result.valid = true

	var agg replyAggregate
	if root && e.Options.Threading && len(replies) > 1 {
		var analyses = make([]AnalysisResult, len(replies))
		var g errgroup.Group
		g.SetLimit(Max(e.Options.Threads, 1))
		for i := range replies {
			var i = i
			g.Go(func() error {
				analyses[i] = e.analyse(&replies[i], depth-1, false, window{lower: floor})
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			panic(err)
		}
		for i := range analyses {
			result.simMoves += analyses[i].SimMoves
		}
		for i := range analyses {
			if agg.add(&analyses[i], depth) {
				break
			}
		}
	} else {
		for i := range replies {
			var w = window{lower: floor}
			if agg.found {
				w.upper = agg.worst
			}
			var analysis = e.analyse(&replies[i], depth-1, false, w)
			result.simMoves += analysis.SimMoves
			if agg.add(&analysis, depth) {
				break
			}
			if e.Options.Pruning && agg.found && agg.worst.Less(floor) {
				break
			}
		}
	}

	if !agg.found {
		// no legal reply: checkmate if the opponent king can be taken, else stalemate
		var probe = e.analyse(child, 1, false, window{})
		result.simMoves += probe.SimMoves
		if probe.OpponentInCheck {
			agg.worst = mateScore(depth)
		} else {
			agg.worst = zeroScore(depth)
		}
		agg.endScore = probe.EndScore
	}
	result.worst = agg.worst
	result.endScore = agg.endScore
	return result
}

type replyAggregate struct {
	found    bool
	worst    Score
	endScore int
}

// add folds one reply into the minimum and reports whether no later reply
// can lower it further.
func (a *replyAggregate) add(r *AnalysisResult, depth int) bool {
	if r.OpponentInCheck {
		// the reply left the opponent king capturable
		return false
	}
	if r.EngineNoMoves {
		a.found = true
		a.worst = zeroScore(depth)
		a.endScore = r.EndScore
		return true
	}
	if !a.found || r.Score.Less(a.worst) {
		a.found = true
		a.worst = r.Score
		a.endScore = r.EndScore
	}
	return false
}

func (e *Engine) logProgress(completed, total int, start time.Time) {
	var elapsed = time.Since(start).Seconds()
	var fraction = float64(completed) / float64(total)
	e.Options.Logger.Debug().
		Int("completed", completed).
		Int("total", total).
		Float64("secsLeft", elapsed*(1/fraction-1)).
		Msg("root move")
}
