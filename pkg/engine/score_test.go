package engine

import (
	"math/rand"
	"testing"
)

func TestScoreCompare(t *testing.T) {
	var tests = []struct {
		l, r Score
		want int
	}{
		{leafScore(0), leafScore(0), 0},
		{leafScore(1), leafScore(0), 1},
		{leafScore(-3), leafScore(0), -1},
		{zeroScore(2), zeroScore(2).append(0), 1},
		{leafScore(0).append(5), leafScore(0), -1},
		{mateScore(2), filledScore(2, ScoreRadix-2), 1},
		{zeroScore(0), zeroScore(0), 0},
	}
	for i, test := range tests {
		if got := test.l.Compare(test.r); got != test.want {
			t.Error(i, test.l, test.r, got)
		}
		if got := test.r.Compare(test.l); got != -test.want {
			t.Error(i, test.r, test.l, got)
		}
	}
}

func TestScorePacked(t *testing.T) {
	var rnd = rand.New(rand.NewSource(1))
	var random = func(n int) Score {
		var s Score
		for i := 0; i < n; i++ {
			s = s.append(uint16(rnd.Intn(ScoreRadix)))
		}
		return s
	}
	for i := 0; i < 1000; i++ {
		var n = 1 + rnd.Intn(5)
		var l, r = random(n), random(n)
		if i%7 == 0 {
			r = l
		}
		var pl, okl = l.Packed()
		var pr, okr = r.Packed()
		if !okl || !okr {
			t.Fatal(l, r)
		}
		var want = 0
		if pl < pr {
			want = -1
		} else if pl > pr {
			want = 1
		}
		if got := l.Compare(r); got != want {
			t.Error(l, r, got, want)
		}
	}
	if _, ok := zeroScore(6).Packed(); ok {
		t.Error("72 bits packed")
	}
	if p, ok := leafScore(0).append(1).Packed(); !ok || p != scoreOffset*ScoreRadix+1 {
		t.Error(p, ok)
	}
}

func TestScoreDigits(t *testing.T) {
	var s = zeroScore(1).append(normalize(1))
	if s.Len() != 2 || s.Digit(0) != 0 || s.Digit(1) != scoreOffset+1 {
		t.Error(s)
	}
	if s.Material() != 1 || s.String() != "[0 2049]" {
		t.Error(s.Material(), s.String())
	}
	if s.prefix(1) != zeroScore(1) || s.prefix(5) != s {
		t.Error(s.prefix(1), s.prefix(5))
	}
	if s.IsMate() || !mateScore(1).append(0).IsMate() || (Score{}).IsMate() {
		t.Error("mate")
	}
	if maxScore(s, zeroScore(2)) != s || maxScore(zeroScore(2), s) != s {
		t.Error("max")
	}
}

func TestScorePanics(t *testing.T) {
	var tests = []func(){
		func() { normalize(scoreOffset) },
		func() { normalize(-scoreOffset - 1) },
		func() { zeroScore(maxDigits).append(0) },
	}
	for i, test := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Error(i, "no panic")
				}
			}()
			test()
		}()
	}
}
