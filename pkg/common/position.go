package common

import "errors"

var (
	errNullMove        = errors.New("null move applied")
	errNoCastlingKing  = errors.New("castling without a king beside the rook")
	errOwnPieceCapture = errors.New("move captures own piece")
)

func NewGameState(board Board, castling bool) GameState {
	var gs = GameState{
		Board:            board,
		KingsAlive:       true,
		EngineCastling:   CastlingRights{Kingside: castling, Queenside: castling},
		OpponentCastling: CastlingRights{Kingside: castling, Queenside: castling},
		EnPassant:        SquareNone,
	}
	for y := range board {
		for x := range board[y] {
			gs.Score += board[y][x].SignedValue()
		}
	}
	return gs
}

func (gs *GameState) Castling(enemy bool) CastlingRights {
	if enemy {
		return gs.OpponentCastling
	}
	return gs.EngineCastling
}

func (gs *GameState) castlingRef(enemy bool) *CastlingRights {
	if enemy {
		return &gs.OpponentCastling
	}
	return &gs.EngineCastling
}

// PossibleMoves generates the moves of one side, scanning ranks upwards and
// files left to right inside each rank. Moves leaving the own king
// capturable are included; the search rejects them.
func (gs *GameState) PossibleMoves(enemy bool) []Move {
	var g = generator{
		board:     &gs.Board,
		enPassant: gs.EnPassant,
		moves:     make([]Move, 0, 48),
	}
	var castling = gs.Castling(enemy)
	for y := int8(0); y < BoardWidth; y++ {
		for x := int8(0); x < BoardWidth; x++ {
			var piece = gs.Board[y][x]
			if piece.Class == Empty || piece.Enemy != enemy {
				continue
			}
			g.piece(piece, Vect{x, y}, castling)
		}
	}
	return g.moves
}

// DefendedMatrix counts for every square how many pieces of the side defend it.
func (gs *GameState) DefendedMatrix(enemy bool) [BoardWidth][BoardWidth]int {
	var result [BoardWidth][BoardWidth]int
	var g = generator{
		board:        &gs.Board,
		enPassant:    SquareNone,
		findDefended: true,
	}
	for y := int8(0); y < BoardWidth; y++ {
		for x := int8(0); x < BoardWidth; x++ {
			var piece = gs.Board[y][x]
			if piece.Class == Empty || piece.Enemy != enemy {
				continue
			}
			g.defended = g.defended[:0]
			g.piece(piece, Vect{x, y}, CastlingRights{})
			for _, sq := range g.defended {
				result[sq.Y][sq.X]++
			}
		}
	}
	return result
}

// IsDefended reports whether a piece of the side, other than the one
// standing on sq, defends sq.
func (gs *GameState) IsDefended(sq Vect, enemy bool) bool {
	var g = generator{
		board:        &gs.Board,
		enPassant:    SquareNone,
		findDefended: true,
	}
	for y := int8(0); y < BoardWidth; y++ {
		for x := int8(0); x < BoardWidth; x++ {
			var piece = gs.Board[y][x]
			var pos = Vect{x, y}
			if piece.Class == Empty || piece.Enemy != enemy || pos == sq {
				continue
			}
			g.defended = g.defended[:0]
			g.piece(piece, pos, CastlingRights{})
			for _, d := range g.defended {
				if d == sq {
					return true
				}
			}
		}
	}
	return false
}

// WithDefended recomputes the defended flag of a standard or promotion move
// by applying it and probing the destination.
func (gs *GameState) WithDefended(m Move) Move {
	if m.Type != MoveStandard && m.Type != MovePromotion {
		return m
	}
	var child GameState
	gs.MakeMove(m, &child)
	m.Defended = child.IsDefended(m.To, m.Enemy)
	return m
}

// MakeMove writes the position after m into child. The receiver is not
// modified. child.KingsAlive is false when m captured a king.
func (gs *GameState) MakeMove(m Move, child *GameState) {
	*child = *gs
	child.EnPassant = SquareNone
	switch m.Type {
	case MoveStandard:
		child.relocate(m.From, m.To, Piece{})
	case MoveDoubleAdvance:
		child.relocate(m.From, m.To, Piece{})
		child.EnPassant = Vect{m.From.X, (m.From.Y + m.To.Y) / 2}
	case MoveEnPassant:
		child.relocate(m.From, m.To, Piece{})
		child.Score -= child.Board.At(m.Captured).SignedValue()
		child.Board.set(m.Captured, Piece{})
	case MoveCastling:
		var rank = backRank(m.Enemy)
		var rook = Vect{let(m.Queenside, int8(0), BoardWidth-1), rank}
		var king = child.castlingKing(rook, m.Queenside)
		var kingFile, rookFile = castlingFiles(m.Queenside)
		child.relocate(king, Vect{kingFile, rank}, Piece{})
		child.relocate(rook, Vect{rookFile, rank}, Piece{})
		*child.castlingRef(m.Enemy) = CastlingRights{}
	case MovePromotion:
		child.relocate(m.From, m.To, m.Promotion)
	case MoveNull:
		panic(errNullMove)
	default:
		panic(errUnknownMoveType)
	}
}

func (gs *GameState) relocate(from, to Vect, replacement Piece) {
	var piece = gs.Board.At(from)
	gs.Board.set(from, Piece{})
	var target = gs.Board.At(to)
	if target.Class != Empty {
		if target.Enemy == piece.Enemy {
			panic(errOwnPieceCapture)
		}
		gs.Score -= target.SignedValue()
		if target.Class == King {
			gs.KingsAlive = false
		}
	}
	switch piece.Class {
	case King:
		*gs.castlingRef(piece.Enemy) = CastlingRights{}
	case Rook:
		if from.Y == backRank(piece.Enemy) {
			var rights = gs.castlingRef(piece.Enemy)
			if from.X == 0 {
				rights.Queenside = false
			} else if from.X == BoardWidth-1 {
				rights.Kingside = false
			}
		}
	}
	if replacement.Class != Empty {
		gs.Score += replacement.SignedValue() - piece.SignedValue()
		piece = replacement
	}
	gs.Board.set(to, piece)
}

func (gs *GameState) castlingKing(rook Vect, queenside bool) Vect {
	var step = Vect{let(queenside, int8(1), -1), 0}
	for sq := rook.Add(step); sq.IsValid(); sq = sq.Add(step) {
		if gs.Board.At(sq).Class == King {
			return sq
		}
	}
	panic(errNoCastlingKing)
}

func (gs *GameState) String() string {
	return FormatLayout(&gs.Board, Normal)
}

// KingCapturable reports whether the side given by enemy can take the
// other side's king with its next move.
func (gs *GameState) KingCapturable(enemy bool) bool {
	var child GameState
	for _, m := range gs.PossibleMoves(enemy) {
		gs.MakeMove(m, &child)
		if !child.KingsAlive {
			return true
		}
	}
	return false
}
