package common

import "unicode"

const pieceChars = ".pnbrqk"

func (p Piece) Value() int {
	switch p.Class {
	case Pawn:
		return PawnValue
	case Knight:
		return KnightValue
	case Bishop:
		return BishopValue
	case Rook:
		return RookValue
	case Queen:
		return QueenValue
	case King:
		return KingValue
	}
	return 0
}

// SignedValue is the piece value from the engine's point of view.
func (p Piece) SignedValue() int {
	return let(p.Enemy, -p.Value(), p.Value())
}

// Char renders engine pieces lowercase and opponent pieces uppercase.
func (p Piece) Char() byte {
	var ch = pieceChars[p.Class]
	if p.Enemy && p.Class != Empty {
		ch = byte(unicode.ToUpper(rune(ch)))
	}
	return ch
}

func parsePiece(ch byte) (Piece, bool) {
	if ch == '.' {
		return Piece{}, true
	}
	var lower = byte(unicode.ToLower(rune(ch)))
	for i := 1; i < len(pieceChars); i++ {
		if pieceChars[i] == lower {
			return Piece{Class: PieceClass(i), Enemy: lower != ch}, true
		}
	}
	return Piece{}, false
}
