package common

import "strings"

type Vect struct {
	X, Y int8
}

var SquareNone = Vect{-1, -1}

type SquareType int

const (
	SquareFree SquareType = iota
	SquareOwn
	SquareEnemy
	SquareInvalid
)

func (v Vect) Add(o Vect) Vect {
	return Vect{v.X + o.X, v.Y + o.Y}
}

func (v Vect) IsValid() bool {
	return v.X >= 0 && v.X < BoardWidth && v.Y >= 0 && v.Y < BoardWidth
}

// CheckSquare classifies pos relative to the side given by enemy.
func CheckSquare(board *Board, pos Vect, enemy bool) SquareType {
	if !pos.IsValid() {
		return SquareInvalid
	}
	var piece = board[pos.Y][pos.X]
	if piece.Class == Empty {
		return SquareFree
	}
	if piece.Enemy == enemy {
		return SquareOwn
	}
	return SquareEnemy
}

func (b *Board) At(pos Vect) Piece {
	return b[pos.Y][pos.X]
}

func (b *Board) set(pos Vect, piece Piece) {
	b[pos.Y][pos.X] = piece
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func (o Orientation) apply(pos Vect) Vect {
	if o == Flipped {
		return Vect{pos.X, BoardWidth - 1 - pos.Y}
	}
	return pos
}

func SquareName(pos Vect, o Orientation) string {
	pos = o.apply(pos)
	var file byte = 'X'
	if pos.X >= 0 && int(pos.X) < len(fileNames) {
		file = fileNames[pos.X]
	}
	var rank byte = 'X'
	if pos.Y >= 0 && int(pos.Y) < len(rankNames) {
		rank = rankNames[pos.Y]
	}
	return string(file) + string(rank)
}

func ParseSquare(s string, o Orientation) (Vect, bool) {
	if len(s) != 2 {
		return SquareNone, false
	}
	var file = strings.IndexByte(fileNames[:BoardWidth], s[0])
	var rank = strings.IndexByte(rankNames[:BoardWidth], s[1])
	if file < 0 || rank < 0 {
		return SquareNone, false
	}
	return o.apply(Vect{int8(file), int8(rank)}), true
}
