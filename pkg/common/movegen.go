package common

import "errors"

var (
	rookDirections   = []Vect{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []Vect{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([]Vect{}, rookDirections...), bishopDirections...)
	knightOffsets    = []Vect{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets      = []Vect{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
)

var errCastlingBoardWidth = errors.New("castling requires an 8 file board")

type generator struct {
	board        *Board
	enPassant    Vect
	findDefended bool
	moves        []Move
	defended     []Vect
}

// Moves returns the moves of piece standing on pos and, when findDefended
// is set, the squares it defends.
func (p Piece) Moves(board *Board, pos Vect, findDefended bool,
	enPassant Vect, castling CastlingRights) ([]Move, []Vect) {
	var g = generator{
		board:        board,
		enPassant:    enPassant,
		findDefended: findDefended,
	}
	g.piece(p, pos, castling)
	return g.moves, g.defended
}

func (g *generator) piece(p Piece, pos Vect, castling CastlingRights) {
	switch p.Class {
	case Pawn:
		g.pawn(p, pos)
	case Knight:
		g.step(p, pos, knightOffsets)
	case Bishop:
		g.slide(p, pos, bishopDirections)
	case Rook:
		g.slide(p, pos, rookDirections)
		g.castling(p, pos, castling)
	case Queen:
		g.slide(p, pos, queenDirections)
	case King:
		g.step(p, pos, kingOffsets)
	}
}

func (g *generator) defend(sq Vect) {
	if g.findDefended {
		g.defended = append(g.defended, sq)
	}
}

func (g *generator) slide(p Piece, pos Vect, directions []Vect) {
	for _, dir := range directions {
		for to := pos.Add(dir); ; to = to.Add(dir) {
			var st = CheckSquare(g.board, to, p.Enemy)
			if st == SquareInvalid {
				break
			}
			g.defend(to)
			if st == SquareOwn {
				break
			}
			g.moves = append(g.moves, NewStandardMove(p.Enemy, pos, to, false))
			if st == SquareEnemy {
				break
			}
		}
	}
}

func (g *generator) step(p Piece, pos Vect, offsets []Vect) {
	for _, offset := range offsets {
		var to = pos.Add(offset)
		var st = CheckSquare(g.board, to, p.Enemy)
		if st == SquareInvalid {
			continue
		}
		g.defend(to)
		if st != SquareOwn {
			g.moves = append(g.moves, NewStandardMove(p.Enemy, pos, to, false))
		}
	}
}

func (g *generator) pawn(p Piece, pos Vect) {
	var dir = pawnDirection(p.Enemy)
	var forward = pos.Add(Vect{0, dir})
	if CheckSquare(g.board, forward, p.Enemy) == SquareFree {
		g.pawnMove(p, pos, forward)
		if pos.Y == pawnStartRank(p.Enemy) {
			var double = forward.Add(Vect{0, dir})
			if CheckSquare(g.board, double, p.Enemy) == SquareFree {
				g.moves = append(g.moves, NewDoubleAdvance(p.Enemy, pos, double))
			}
		}
	}
	for _, dx := range [2]int8{-1, 1} {
		var to = pos.Add(Vect{dx, dir})
		var st = CheckSquare(g.board, to, p.Enemy)
		if st == SquareInvalid {
			continue
		}
		g.defend(to)
		if st == SquareEnemy {
			g.pawnMove(p, pos, to)
		} else if to == g.enPassant {
			var captured = Vect{to.X, pos.Y}
			if g.board.At(captured) == (Piece{Class: Pawn, Enemy: !p.Enemy}) {
				g.moves = append(g.moves, NewEnPassant(p.Enemy, pos, to, captured))
			}
		}
	}
}

func (g *generator) pawnMove(p Piece, from, to Vect) {
	if to.Y == lastRank(p.Enemy) {
		g.moves = append(g.moves, NewPromotion(p.Enemy, from, to, Piece{Class: Queen, Enemy: p.Enemy}, false))
	} else {
		g.moves = append(g.moves, NewStandardMove(p.Enemy, from, to, false))
	}
}

// castling walks from a home rook towards the centre and emits a castling
// move when the first piece met is the own king. Attacked squares on the
// king's path are not examined.
func (g *generator) castling(p Piece, pos Vect, rights CastlingRights) {
	if BoardWidth != 8 {
		panic(errCastlingBoardWidth)
	}
	if pos.Y != backRank(p.Enemy) {
		return
	}
	var queenside bool
	switch pos.X {
	case 0:
		if !rights.Queenside {
			return
		}
		queenside = true
	case BoardWidth - 1:
		if !rights.Kingside {
			return
		}
	default:
		return
	}
	var step = Vect{let(queenside, int8(1), -1), 0}
	for sq := pos.Add(step); ; sq = sq.Add(step) {
		switch CheckSquare(g.board, sq, p.Enemy) {
		case SquareFree:
			continue
		case SquareOwn:
			if g.board.At(sq).Class == King &&
				castlingTargetsFree(g.board, pos, sq, queenside) {
				g.moves = append(g.moves, NewCastling(p.Enemy, queenside))
			}
		}
		return
	}
}

func castlingFiles(queenside bool) (kingFile, rookFile int8) {
	if queenside {
		return 2, 3
	}
	return 6, 5
}

func castlingTargetsFree(board *Board, rook, king Vect, queenside bool) bool {
	var kingFile, rookFile = castlingFiles(queenside)
	for _, target := range [2]Vect{{kingFile, rook.Y}, {rookFile, rook.Y}} {
		if target != rook && target != king && board.At(target).Class != Empty {
			return false
		}
	}
	return true
}

func pawnDirection(enemy bool) int8 {
	return let(enemy, int8(-1), 1)
}

func pawnStartRank(enemy bool) int8 {
	return let(enemy, int8(BoardWidth-2), 1)
}

func lastRank(enemy bool) int8 {
	return let(enemy, int8(0), BoardWidth-1)
}

func backRank(enemy bool) int8 {
	return let(enemy, int8(BoardWidth-1), 0)
}
