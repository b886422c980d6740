package common

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	var gs = StartPosition(true)
	var tests = []struct {
		text  string
		o     Orientation
		enemy bool
		want  Move
	}{
		{"e2 e4", Normal, false, NewDoubleAdvance(false, Vect{4, 1}, Vect{4, 3})},
		{"e2e4", Normal, false, NewDoubleAdvance(false, Vect{4, 1}, Vect{4, 3})},
		{"e2 -> e4", Normal, false, NewDoubleAdvance(false, Vect{4, 1}, Vect{4, 3})},
		{"E2 E3", Normal, false, NewStandardMove(false, Vect{4, 1}, Vect{4, 2}, true)},
		{"g1 f3", Normal, false, NewStandardMove(false, Vect{6, 0}, Vect{5, 2}, true)},
		{"e7 e5", Flipped, false, NewDoubleAdvance(false, Vect{4, 1}, Vect{4, 3})},
		{"e7 e5", Normal, true, NewDoubleAdvance(true, Vect{4, 6}, Vect{4, 4})},
	}
	for i, test := range tests {
		var m, err = ParseMove(&gs, test.text, test.enemy, test.o)
		if err != nil || m != test.want {
			t.Error(i, test, m, err)
		}
	}
}

func TestParseMoveIllegal(t *testing.T) {
	var gs = StartPosition(true)
	for _, text := range []string{"", "e2", "e2 e5", "e7 e5", "0-0", "0-0-0", "z9 e4", "e2 e4 q x"} {
		var _, err = ParseMove(&gs, text, false, Normal)
		if !errors.Is(err, ErrIllegalMove) {
			t.Error(text, err)
		}
	}
}

func TestParseMovePromotion(t *testing.T) {
	var gs, err = NewGameStateFromLayout(`
		. . . . K . . .
		p . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		r . . . k . . r
	`, Normal, true)
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		text  string
		class PieceClass
	}{
		{"a7 a8", Queen},
		{"a7 a8 n", Knight},
		{"a7a8r", Rook},
		{"a7 -> a8 (b)", Bishop},
	}
	for i, test := range tests {
		var m, err = ParseMove(&gs, test.text, false, Normal)
		if err != nil || m.Type != MovePromotion || m.Promotion != (Piece{Class: test.class}) {
			t.Error(i, test, m, err)
		}
	}
	if _, err := ParseMove(&gs, "a7 a8 k", false, Normal); !errors.Is(err, ErrIllegalMove) {
		t.Error(err)
	}

	for _, text := range []string{"0-0", "O-O"} {
		var m, err = ParseMove(&gs, text, false, Normal)
		if err != nil || m != NewCastling(false, false) {
			t.Error(text, m, err)
		}
	}
	if m, err := ParseMove(&gs, "0-0-0", false, Normal); err != nil || m != NewCastling(false, true) {
		t.Error(m, err)
	}
}

func TestMoveNotation(t *testing.T) {
	var tests = []struct {
		move Move
		o    Orientation
		want string
	}{
		{NewStandardMove(false, Vect{4, 1}, Vect{4, 3}, false), Normal, "e2 -> e4"},
		{NewStandardMove(false, Vect{4, 1}, Vect{4, 3}, false), Flipped, "e7 -> e5"},
		{NewPromotion(false, Vect{0, 6}, Vect{0, 7}, Piece{Class: Queen}, false), Normal, "a7 -> a8 (q)"},
		{NewPromotion(true, Vect{0, 1}, Vect{0, 0}, Piece{Class: Knight, Enemy: true}, false), Normal, "a2 -> a1 (N)"},
		{NewCastling(false, false), Normal, "0-0"},
		{NewCastling(true, true), Flipped, "0-0-0"},
		{MoveEmpty, Normal, "NULL"},
	}
	for i, test := range tests {
		if got := test.move.Notation(test.o); got != test.want {
			t.Error(i, test, got)
		}
	}
	if NewCastling(true, false).SideName() != "Opponent" || MoveEmpty.SideName() != "Engine" {
		t.Error("side name")
	}
}
