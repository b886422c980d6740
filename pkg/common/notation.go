package common

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var ErrIllegalMove = errors.New("illegal move")

var promotionClasses = map[string]PieceClass{
	"q": Queen,
	"r": Rook,
	"b": Bishop,
	"n": Knight,
}

// ParseMove matches manual move text against the moves the side can make.
// Accepted forms: "e2 e4", "e2e4", "e2 -> e4", "0-0", "0-0-0", with an
// optional promotion letter such as "e7 e8 n".
func ParseMove(gs *GameState, s string, enemy bool, o Orientation) (Move, error) {
	var text = strings.ToLower(strings.ReplaceAll(s, "->", " "))
	text = strings.NewReplacer("(", " ", ")", " ").Replace(text)
	var fields = strings.Fields(text)
	if len(fields) == 0 {
		return MoveEmpty, fmt.Errorf("%w: empty", ErrIllegalMove)
	}

	switch fields[0] {
	case "0-0", "o-o":
		return findCastling(gs, enemy, false, s)
	case "0-0-0", "o-o-o":
		return findCastling(gs, enemy, true, s)
	}

	if len(fields) == 1 && len(fields[0]) >= 4 {
		var f = fields[0]
		fields = []string{f[:2], f[2:4]}
		if len(f) > 4 {
			fields = append(fields, f[4:])
		}
	}
	if len(fields) < 2 || len(fields) > 3 {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	var from, okFrom = ParseSquare(fields[0], o)
	var to, okTo = ParseSquare(fields[1], o)
	if !okFrom || !okTo {
		return MoveEmpty, fmt.Errorf("%w: bad square in %q", ErrIllegalMove, s)
	}
	var promotion = Queen
	if len(fields) == 3 {
		var class, ok = promotionClasses[fields[2]]
		if !ok {
			return MoveEmpty, fmt.Errorf("%w: bad promotion piece in %q", ErrIllegalMove, s)
		}
		promotion = class
	}

	for _, m := range gs.PossibleMoves(enemy) {
		if m.Type == MoveCastling || m.From != from || m.To != to {
			continue
		}
		if m.Type == MovePromotion {
			m.Promotion.Class = promotion
		}
		return gs.WithDefended(m), nil
	}
	return MoveEmpty, fmt.Errorf("%w: %q", ErrIllegalMove, s)
}

func findCastling(gs *GameState, enemy, queenside bool, s string) (Move, error) {
	var moves = gs.PossibleMoves(enemy)
	var i = slices.IndexFunc(moves, func(m Move) bool {
		return m.Type == MoveCastling && m.Queenside == queenside
	})
	if i < 0 {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	return moves[i], nil
}
