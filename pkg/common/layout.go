package common

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadLayout = errors.New("bad layout")

// ParseLayout reads one line per rank, top line first, with space separated
// piece characters: lowercase for the engine, uppercase for the opponent and
// '.' for an empty square.
func ParseLayout(layout string, o Orientation) (Board, error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != BoardWidth {
		return Board{}, fmt.Errorf("%w: %d ranks, want %d", ErrBadLayout, len(lines), BoardWidth)
	}
	var board Board
	for i, line := range lines {
		var fields = strings.Fields(line)
		if len(fields) != BoardWidth {
			return Board{}, fmt.Errorf("%w: rank %q has %d squares, want %d", ErrBadLayout, line, len(fields), BoardWidth)
		}
		for j, field := range fields {
			var piece, ok = parsePiece(field[0])
			if len(field) != 1 || !ok {
				return Board{}, fmt.Errorf("%w: unknown piece %q", ErrBadLayout, field)
			}
			board.set(o.apply(Vect{int8(j), int8(BoardWidth - 1 - i)}), piece)
		}
	}
	return board, nil
}

func FormatLayout(board *Board, o Orientation) string {
	var sb strings.Builder
	for i := 0; i < BoardWidth; i++ {
		for j := 0; j < BoardWidth; j++ {
			if j != 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(board.At(o.apply(Vect{int8(j), int8(BoardWidth - 1 - i)})).Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func NewGameStateFromLayout(layout string, o Orientation, castling bool) (GameState, error) {
	var board, err = ParseLayout(layout, o)
	if err != nil {
		return GameState{}, err
	}
	if err := CheckKings(&board); err != nil {
		return GameState{}, err
	}
	return NewGameState(board, castling), nil
}

// CheckKings requires exactly one king per side. This also bounds the
// material for the search score.
func CheckKings(board *Board) error {
	var engineKings, opponentKings = 0, 0
	for y := range board {
		for x := range board[y] {
			if board[y][x].Class != King {
				continue
			}
			if board[y][x].Enemy {
				opponentKings++
			} else {
				engineKings++
			}
		}
	}
	if engineKings != 1 || opponentKings != 1 {
		return fmt.Errorf("%w: %d engine and %d opponent kings, want one each",
			ErrBadLayout, engineKings, opponentKings)
	}
	return nil
}

// StartPosition panics if the built-in layout is broken.
func StartPosition(castling bool) GameState {
	var gs, err = NewGameStateFromLayout(StandardLayout, Normal, castling)
	if err != nil {
		panic(err)
	}
	return gs
}
