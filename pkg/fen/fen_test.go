package fen

import (
	"strings"
	"testing"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/TwoPly/pkg/common"
)

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestParseStartPosition(t *testing.T) {
	var gs, orientation, err = Parse(startFen)
	if err != nil {
		t.Fatal(err)
	}
	var want = common.StartPosition(true)
	if gs != want || orientation != common.Normal {
		t.Error(gs.String(), orientation)
	}
}

func TestParseBlackToMove(t *testing.T) {
	var gs, orientation, err = Parse("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b Kq e3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if orientation != common.Flipped {
		t.Fatal(orientation)
	}
	if gs.Board[0][4] != (common.Piece{Class: common.King}) ||
		gs.Board[0][3] != (common.Piece{Class: common.Queen}) ||
		gs.Board[7][4] != (common.Piece{Class: common.King, Enemy: true}) ||
		gs.Board[4][4] != (common.Piece{Class: common.Pawn, Enemy: true}) {
		t.Error(gs.String())
	}
	if gs.EnPassant != (common.Vect{X: 4, Y: 5}) {
		t.Error(gs.EnPassant)
	}
	if gs.EngineCastling != (common.CastlingRights{Queenside: true}) ||
		gs.OpponentCastling != (common.CastlingRights{Kingside: true}) {
		t.Error(gs.EngineCastling, gs.OpponentCastling)
	}
	if gs.Score != 0 || !gs.KingsAlive {
		t.Error(gs.Score, gs.KingsAlive)
	}
	if got := common.FormatLayout(&gs.Board, orientation); !strings.HasPrefix(got, "r n b q k b n r\n") {
		t.Error(got)
	}
}

// Without checks, pins or castling both generators agree on the move count.
func TestMoveCountOracle(t *testing.T) {
	var fens = []string{
		startFen,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
	}
	for i, s := range fens {
		var gs, _, err = Parse(s)
		if err != nil {
			t.Fatal(i, err)
		}
		option, err := chess.FEN(s)
		if err != nil {
			t.Fatal(i, err)
		}
		var want = len(chess.NewGame(option).ValidMoves())
		if got := len(gs.PossibleMoves(false)); got != want {
			t.Error(i, got, want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "not a fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1"} {
		if _, _, err := Parse(s); err == nil {
			t.Error(s)
		}
	}
}

// Castling with black to move lands on the same squares as in chess.
func TestCastlingBlackToMove(t *testing.T) {
	const s = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1"
	var tests = []struct {
		queenside bool
		san       string
		notation  string
	}{
		{false, "O-O", "0-0"},
		{true, "O-O-O", "0-0-0"},
	}
	for i, test := range tests {
		var gs, orientation, err = Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		var castling = common.NewCastling(false, test.queenside)
		var found = false
		for _, m := range gs.PossibleMoves(false) {
			if m == castling {
				found = true
			}
		}
		if !found {
			t.Fatal(i, "castling not generated")
		}
		var child common.GameState
		gs.MakeMove(castling, &child)

		option, err := chess.FEN(s)
		if err != nil {
			t.Fatal(err)
		}
		var game = chess.NewGame(option)
		if err := game.MoveStr(test.san); err != nil {
			t.Fatal(i, err)
		}
		var board = game.Position().Board()
		for sq := chess.A1; sq <= chess.H8; sq++ {
			var want common.Piece
			if piece := board.Piece(sq); piece != chess.NoPiece {
				want = common.Piece{Class: pieceClasses[piece.Type()], Enemy: piece.Color() != chess.Black}
			}
			if got := child.Board.At(toVect(sq, orientation)); got != want {
				t.Error(i, test.san, sq, got, want)
			}
		}
		if castling.Notation(orientation) != test.notation {
			t.Error(i, castling.Notation(orientation))
		}
	}
}

func TestParseKings(t *testing.T) {
	for _, s := range []string{
		"rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/KKKKKKKK w - - 0 1",
	} {
		if _, _, err := Parse(s); err == nil {
			t.Error(s, err)
		}
	}
}
