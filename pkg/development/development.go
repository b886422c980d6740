// Package development picks one move among moves the search found equally
// good, preferring development and piece cohesion, with a random share.
package development

import (
	"math/rand"

	"github.com/ChizhovVadim/TwoPly/pkg/common"
)

const (
	aheadMaterial = 12
	pawnMaterial  = 20
)

type Chooser struct {
	RandomFactor float64
	rnd          *rand.Rand
}

func NewChooser(randomFactor float64, seed int64) *Chooser {
	return &Chooser{
		RandomFactor: randomFactor,
		rnd:          rand.New(rand.NewSource(seed)),
	}
}

// FindBestDevelopment returns the highest rated move, or MoveEmpty when
// moves is empty.
func (c *Chooser) FindBestDevelopment(gs *common.GameState, moves []common.Move) (common.Move, float64) {
	var bestMove = common.MoveEmpty
	var bestDev = -1.0
	var defended = gs.DefendedMatrix(false)
	for _, m := range moves {
		var dev = Rate(gs, &defended, m)
		dev = dev*(1-c.RandomFactor) + c.rnd.Float64()*c.RandomFactor
		if dev > bestDev {
			bestMove = m
			bestDev = dev
		}
	}
	return bestMove, bestDev
}

// Rate scores a move in [0, 1] without the random share.
func Rate(gs *common.GameState, defended *[common.BoardWidth][common.BoardWidth]int, m common.Move) float64 {
	var dev = 0.0
	if gs.Score > aheadMaterial {
		var child common.GameState
		gs.MakeMove(m, &child)
		dev += trapScore(&child) / 60
		dev += pawnScore(gs, m) / 3
	} else {
		dev += common.Min(defendedScore(defended, m), 1) / 3
		dev += common.Min(positionScore(gs, m), 4) / 6
	}
	return dev
}

// trapScore prefers positions leaving the opponent few replies.
func trapScore(child *common.GameState) float64 {
	var count = len(child.PossibleMoves(true))
	return float64(common.Max(0, 20-count))
}

func pawnScore(gs *common.GameState, m common.Move) float64 {
	if gs.Score > pawnMaterial {
		return 0
	}
	var from, _, ok = m.Path()
	if !ok || gs.Board.At(from).Class != common.Pawn {
		return 0
	}
	return 1
}

func defendedScore(defended *[common.BoardWidth][common.BoardWidth]int, m common.Move) float64 {
	var _, to, ok = m.Path()
	if !ok {
		return 0
	}
	var score = float64(defended[to.Y][to.X])
	if m.Defended || m.Type == common.MoveEnPassant {
		score--
	}
	return common.Max(score, 0)
}

func positionScore(gs *common.GameState, m common.Move) float64 {
	var from, to, ok = m.Path()
	if !ok {
		return 0
	}
	if gs.Board.At(from).Class == common.King {
		if to.Y == 0 {
			return 1
		}
		return 0
	}
	var score = 0.0
	if from.Y < 2 && to.Y >= 2 {
		score += 2
		if to.Y > 2 {
			score++
		}
		if to.X == 3 || to.X == 4 {
			score++
		}
	}
	return score
}
