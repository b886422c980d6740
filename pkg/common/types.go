package common

const BoardWidth = 8

const (
	Empty PieceClass = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// MaxMaterial is the material of the standard initial layout summed over both sides.
const MaxMaterial = 2 * (8*PawnValue + 2*KnightValue + 2*BishopValue + 2*RookValue + QueenValue + KingValue)

const (
	PawnValue   = 1
	KnightValue = 3
	BishopValue = 3
	RookValue   = 5
	QueenValue  = 9
	KingValue   = 500
)

type PieceClass int8

type Piece struct {
	Class PieceClass
	Enemy bool
}

type Board [BoardWidth][BoardWidth]Piece

type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

type GameState struct {
	Board            Board
	Score            int
	KingsAlive       bool
	EngineCastling   CastlingRights
	OpponentCastling CastlingRights
	EnPassant        Vect
}

// Orientation maps internal coordinates to what a human sees. Flipped
// mirrors the ranks, used when the engine plays the top side.
type Orientation int

const (
	Normal Orientation = iota
	Flipped
)

const StandardLayout = `
R N B Q K B N R
P P P P P P P P
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
p p p p p p p p
r n b q k b n r
`
