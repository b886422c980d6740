package common

import (
	"errors"
	"fmt"
)

type MoveType int8

const (
	MoveNull MoveType = iota
	MoveStandard
	MoveDoubleAdvance
	MoveEnPassant
	MoveCastling
	MovePromotion
)

// Move is a tagged variant; the meaning of the fields depends on Type.
//
//	MoveStandard       From, To, Defended
//	MoveDoubleAdvance  From, To
//	MoveEnPassant      From, To, Captured
//	MoveCastling       Queenside
//	MovePromotion      From, To, Promotion, Defended
//	MoveNull           nothing; a placeholder that must never be applied
type Move struct {
	Type      MoveType
	Enemy     bool
	From      Vect
	To        Vect
	Captured  Vect
	Promotion Piece
	Queenside bool
	Defended  bool
}

var MoveEmpty = Move{}

var errUnknownMoveType = errors.New("unknown move type")

func NewStandardMove(enemy bool, from, to Vect, defended bool) Move {
	return Move{Type: MoveStandard, Enemy: enemy, From: from, To: to, Defended: defended}
}

func NewDoubleAdvance(enemy bool, from, to Vect) Move {
	return Move{Type: MoveDoubleAdvance, Enemy: enemy, From: from, To: to}
}

func NewEnPassant(enemy bool, from, to, captured Vect) Move {
	return Move{Type: MoveEnPassant, Enemy: enemy, From: from, To: to, Captured: captured}
}

func NewCastling(enemy bool, queenside bool) Move {
	return Move{Type: MoveCastling, Enemy: enemy, Queenside: queenside}
}

func NewPromotion(enemy bool, from, to Vect, piece Piece, defended bool) Move {
	return Move{Type: MovePromotion, Enemy: enemy, From: from, To: to, Promotion: piece, Defended: defended}
}

// Path returns the squares a move travels between. Castling has none.
func (m Move) Path() (from, to Vect, ok bool) {
	switch m.Type {
	case MoveStandard, MoveDoubleAdvance, MoveEnPassant, MovePromotion:
		return m.From, m.To, true
	case MoveCastling:
		return SquareNone, SquareNone, false
	case MoveNull:
		panic(errors.New("null move has no path"))
	}
	panic(errUnknownMoveType)
}

func (m Move) String() string {
	return m.Notation(Normal)
}

func (m Move) Notation(o Orientation) string {
	switch m.Type {
	case MoveStandard, MoveDoubleAdvance, MoveEnPassant:
		return SquareName(m.From, o) + " -> " + SquareName(m.To, o)
	case MovePromotion:
		return fmt.Sprintf("%v -> %v (%c)", SquareName(m.From, o), SquareName(m.To, o), m.Promotion.Char())
	case MoveCastling:
		if m.Queenside {
			return "0-0-0"
		}
		return "0-0"
	case MoveNull:
		return "NULL"
	}
	panic(errUnknownMoveType)
}

func (m Move) SideName() string {
	return let(m.Enemy, "Opponent", "Engine")
}
