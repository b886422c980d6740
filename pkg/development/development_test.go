package development

import (
	"testing"

	"github.com/ChizhovVadim/TwoPly/pkg/common"
)

func TestPositionScore(t *testing.T) {
	var gs = common.StartPosition(false)
	var tests = []struct {
		move common.Move
		want float64
	}{
		{common.NewDoubleAdvance(false, common.Vect{X: 4, Y: 1}, common.Vect{X: 4, Y: 3}), 4},
		{common.NewStandardMove(false, common.Vect{X: 4, Y: 1}, common.Vect{X: 4, Y: 2}, false), 3},
		{common.NewStandardMove(false, common.Vect{X: 0, Y: 1}, common.Vect{X: 0, Y: 2}, false), 2},
		{common.NewStandardMove(false, common.Vect{X: 6, Y: 0}, common.Vect{X: 5, Y: 2}, false), 2},
		{common.NewCastling(false, false), 0},
	}
	for i, test := range tests {
		if got := positionScore(&gs, test.move); got != test.want {
			t.Error(i, test, got)
		}
	}
}

func TestRateRange(t *testing.T) {
	var layouts = []string{
		common.StandardLayout,
		`
		. . . . K . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		p p . . . . . .
		r . . q k . . r
		`,
	}
	for i, layout := range layouts {
		var gs, err = common.NewGameStateFromLayout(layout, common.Normal, true)
		if err != nil {
			t.Fatal(err)
		}
		var defended = gs.DefendedMatrix(false)
		for _, m := range gs.PossibleMoves(false) {
			if r := Rate(&gs, &defended, m); r < 0 || r > 1 {
				t.Error(i, m, r)
			}
		}
	}
}

func TestFindBestDevelopment(t *testing.T) {
	var gs = common.StartPosition(false)
	var moves = gs.PossibleMoves(false)
	var defended = gs.DefendedMatrix(false)

	var best, dev = NewChooser(0, 1).FindBestDevelopment(&gs, moves)
	for _, m := range moves {
		if r := Rate(&gs, &defended, m); r > dev {
			t.Error(m, r, best, dev)
		}
	}
	if dev != Rate(&gs, &defended, best) {
		t.Error(best, dev)
	}

	var first, _ = NewChooser(1, 42).FindBestDevelopment(&gs, moves)
	var second, _ = NewChooser(1, 42).FindBestDevelopment(&gs, moves)
	if first != second {
		t.Error("same seed, different choice", first, second)
	}

	if m, dev := NewChooser(0.5, 1).FindBestDevelopment(&gs, nil); m != common.MoveEmpty || dev != -1 {
		t.Error(m, dev)
	}
}

// With a big lead the chooser prefers moves that leave the opponent fewer replies.
func TestTrapScore(t *testing.T) {
	var gs, err = common.NewGameStateFromLayout(`
		K . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . R . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		r . . q k . . r
	`, common.Normal, false)
	if err != nil {
		t.Fatal(err)
	}
	var defended = gs.DefendedMatrix(false)
	var capture = common.NewStandardMove(false, common.Vect{X: 3, Y: 0}, common.Vect{X: 3, Y: 4}, false)
	var idle = common.NewStandardMove(false, common.Vect{X: 7, Y: 0}, common.Vect{X: 6, Y: 0}, false)
	if Rate(&gs, &defended, capture) <= Rate(&gs, &defended, idle) {
		t.Error(Rate(&gs, &defended, capture), Rate(&gs, &defended, idle))
	}
}
