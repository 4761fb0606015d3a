package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string. Only the syntax
// is checked; the position is not validated for legality.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := &chess.Position{FullmoveNumber: 1}

	if err := parsePiecePositions(pos, parts[0]); err != nil {
		return nil, &errors.ParseError{Err: err, Input: fen, Field: 1}
	}

	if err := parseSideToMove(pos, parts); err != nil {
		return nil, &errors.ParseError{Err: err, Input: fen, Field: 2, Expected: "w or b", Got: parts[1]}
	}

	parseCastlingRights(pos, parts)

	if err := parseEnPassant(pos, parts); err != nil {
		return nil, &errors.ParseError{Err: err, Input: fen, Field: 4}
	}

	if err := parseClocks(pos, parts); err != nil {
		return nil, &errors.ParseError{Err: err, Input: fen, Field: 5}
	}

	return pos, nil
}

// MustPositionFromFEN parses a FEN string and panics on error.
// Intended for fixed positions in tests and tables.
func MustPositionFromFEN(fen string) *chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	row, col := 0, 0
	kings := [2]int{}

	for _, c := range placement {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", 8-row, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			pt := chess.PieceTypeFromLetter(byte(c))
			if pt == chess.NoPieceType {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize || row >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			sq := chess.Sq(row, col)
			pos.Board.Set(sq, chess.Piece{Type: pt, Colour: colour})
			if pt == chess.King {
				pos.Kings[colour] = sq
				kings[colour]++
			}
			col++
		}
		if col > chess.BoardSize {
			return fmt.Errorf("rank %d overflows: %w", 8-row, errors.ErrInvalidFEN)
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fmt.Errorf("incomplete board: %w", errors.ErrInvalidFEN)
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("need one king per side: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	pos.SideToMove = chess.White
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.SideToMove = chess.White
	case "b":
		pos.SideToMove = chess.Black
	default:
		return errors.ErrInvalidFEN
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, parts []string) {
	pos.Castling = chess.CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			pos.Castling.WhiteKingSide = true
		case 'Q':
			pos.Castling.WhiteQueenSide = true
		case 'k':
			pos.Castling.BlackKingSide = true
		case 'q':
			pos.Castling.BlackQueenSide = true
		}
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, parts []string) error {
	pos.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	pos.EnPassant = true
	pos.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.FullmoveNumber = n
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := pos.Board.At(chess.Sq(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.SideToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	hasCastling := false
	if pos.Castling.WhiteKingSide {
		sb.WriteByte('K')
		hasCastling = true
	}
	if pos.Castling.WhiteQueenSide {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if pos.Castling.BlackKingSide {
		sb.WriteByte('k')
		hasCastling = true
	}
	if pos.Castling.BlackQueenSide {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if pos.EnPassant {
		sb.WriteString(pos.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
