// Package fen imports positions written in Forsyth-Edwards Notation. The
// side to move becomes the engine side; when that is black the ranks are
// mirrored so the engine keeps the low ranks.
package fen

import (
	"fmt"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/TwoPly/pkg/common"
)

var pieceClasses = map[chess.PieceType]common.PieceClass{
	chess.Pawn:   common.Pawn,
	chess.Knight: common.Knight,
	chess.Bishop: common.Bishop,
	chess.Rook:   common.Rook,
	chess.Queen:  common.Queen,
	chess.King:   common.King,
}

// Parse returns the position and the orientation to print it with.
func Parse(s string) (common.GameState, common.Orientation, error) {
	var option, err = chess.FEN(s)
	if err != nil {
		return common.GameState{}, common.Normal, fmt.Errorf("parse fen failed %v: %w", s, err)
	}
	var pos = chess.NewGame(option).Position()
	var engineColor = pos.Turn()
	var orientation = common.Normal
	if engineColor == chess.Black {
		orientation = common.Flipped
	}

	var board common.Board
	for sq := chess.A1; sq <= chess.H8; sq++ {
		var piece = pos.Board().Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		var at = toVect(sq, orientation)
		board[at.Y][at.X] = common.Piece{
			Class: pieceClasses[piece.Type()],
			Enemy: piece.Color() != engineColor,
		}
	}

	if err := common.CheckKings(&board); err != nil {
		return common.GameState{}, common.Normal, fmt.Errorf("parse fen failed %v: %w", s, err)
	}

	var gs = common.NewGameState(board, false)
	gs.EngineCastling = castlingRights(pos.CastleRights(), engineColor)
	gs.OpponentCastling = castlingRights(pos.CastleRights(), engineColor.Other())
	if ep := pos.EnPassantSquare(); ep != chess.NoSquare {
		gs.EnPassant = toVect(ep, orientation)
	}
	return gs, orientation, nil
}

func toVect(sq chess.Square, o common.Orientation) common.Vect {
	var v = common.Vect{X: int8(sq.File()), Y: int8(sq.Rank())}
	if o == common.Flipped {
		v.Y = common.BoardWidth - 1 - v.Y
	}
	return v
}

func castlingRights(cr chess.CastleRights, color chess.Color) common.CastlingRights {
	return common.CastlingRights{
		Kingside:  cr.CanCastle(color, chess.KingSide),
		Queenside: cr.CanCastle(color, chess.QueenSide),
	}
}
