package engine

import (
	"errors"
	"strconv"
	"strings"
)

const (
	ScoreRadix  = 4096
	scoreBits   = 12
	scoreOffset = ScoreRadix / 2
	MaxDepth    = 15
	maxDigits   = MaxDepth + 1
)

var (
	errScoreOverflow = errors.New("score has too many digits")
	errScoreRange    = errors.New("material outside score radix")
)

// Score orders search outcomes lexicographically, most significant digit
// first. A node searched to depth d carries d+1 digits: the worst case
// digits of its best candidate followed by its own normalized material.
// Every digit of a mate is ScoreRadix-1, every digit of a lost or drawn
// outcome is 0.
type Score struct {
	n      uint8
	digits [maxDigits]uint16
}

func normalize(material int) uint16 {
	var v = material + scoreOffset
	if v < 0 || v >= ScoreRadix {
		panic(errScoreRange)
	}
	return uint16(v)
}

func leafScore(material int) Score {
	return Score{}.append(normalize(material))
}

func filledScore(n int, digit uint16) Score {
	var s = Score{n: uint8(n)}
	for i := 0; i < n; i++ {
		s.digits[i] = digit
	}
	return s
}

func zeroScore(n int) Score {
	return filledScore(n, 0)
}

func mateScore(n int) Score {
	return filledScore(n, ScoreRadix-1)
}

func (s Score) Len() int {
	return int(s.n)
}

func (s Score) Digit(i int) int {
	return int(s.digits[i])
}

func (s Score) append(digit uint16) Score {
	if int(s.n) >= maxDigits {
		panic(errScoreOverflow)
	}
	s.digits[s.n] = digit
	s.n++
	return s
}

func (s Score) prefix(n int) Score {
	if n >= int(s.n) {
		return s
	}
	var result = Score{n: uint8(n)}
	copy(result.digits[:n], s.digits[:n])
	return result
}

// Compare returns -1, 0 or 1. On a common prefix the shorter score is the
// greater one.
func (s Score) Compare(o Score) int {
	var n = int(s.n)
	if int(o.n) < n {
		n = int(o.n)
	}
	for i := 0; i < n; i++ {
		if s.digits[i] != o.digits[i] {
			if s.digits[i] < o.digits[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case s.n == o.n:
		return 0
	case s.n < o.n:
		return 1
	default:
		return -1
	}
}

func (s Score) Less(o Score) bool {
	return s.Compare(o) < 0
}

func maxScore(l, r Score) Score {
	if l.Less(r) {
		return r
	}
	return l
}

func (s Score) IsMate() bool {
	return s.n != 0 && s.digits[0] == ScoreRadix-1
}

// Packed is the fixed radix encoding of the score. It orders equal length
// scores exactly like Compare and fails when the digits do not fit 64 bits.
func (s Score) Packed() (uint64, bool) {
	if int(s.n)*scoreBits > 64 {
		return 0, false
	}
	var result uint64
	for i := 0; i < int(s.n); i++ {
		result = result*ScoreRadix + uint64(s.digits[i])
	}
	return result, true
}

// Material is the raw material of the least significant digit.
func (s Score) Material() int {
	if s.n == 0 {
		return 0
	}
	return int(s.digits[s.n-1]) - scoreOffset
}

func (s Score) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < int(s.n); i++ {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(s.digits[i])))
	}
	sb.WriteByte(']')
	return sb.String()
}
