package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string       `json:"initialFEN"`
	Moves      []JSONMove   `json:"moves"`
	PlyCount   int          `json:"plyCount"`
	Status     string       `json:"status"`
	Result     string       `json:"result"`
	InCheck    bool         `json:"inCheck,omitempty"`
	Pending    *JSONPending `json:"pendingPromotion,omitempty"`
	FinalFEN   string       `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	Text       string `json:"text,omitempty"` // configured notation when not SAN
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castling   bool   `json:"castling,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	FEN        string `json:"fen"`
}

// JSONPending describes a pawn waiting for its promotion piece.
type JSONPending struct {
	Square string `json:"square"`
	Color  string `json:"color"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON writes a single game in JSON format.
func OutputGameJSON(g *game.Game, cfg *config.Config) error {
	return encodeJSON(cfg.OutputFile, GameToJSON(g, cfg))
}

// OutputGamesJSON writes multiple games as a JSON array.
func OutputGamesJSON(games []*game.Game, cfg *config.Config, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, g := range games {
		jsonGames[i] = GameToJSON(g, cfg)
	}
	return encodeJSON(w, &JSONOutput{Games: jsonGames})
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game, cfg *config.Config) *JSONGame {
	status := g.Status()
	jg := &JSONGame{
		InitialFEN: g.StartFEN(),
		PlyCount:   g.Plies(),
		Status:     status.String(),
		Result:     status.Result(),
		InCheck:    status.InCheck,
		FinalFEN:   g.FEN(),
	}
	if pending := g.Pending(); pending != nil {
		jg.Pending = &JSONPending{
			Square: pending.Square.String(),
			Color:  colorName(pending.Colour),
		}
	}

	start := g.StartPosition()
	moveNum := start.FullmoveNumber
	format := cfg.Output.Format.MoveFormat()

	jg.Moves = make([]JSONMove, 0, g.Plies())
	for _, pm := range replay(g) {
		jm := convertSingleMove(pm)
		if pm.rec.Piece.Colour == chess.White {
			jm.MoveNumber = moveNum
		} else {
			moveNum++
		}
		if format != engine.FormatSAN {
			jm.Text = engine.FormatMove(format, pm.rec, pm.after)
		}
		jg.Moves = append(jg.Moves, jm)
	}

	return jg
}

// convertSingleMove converts one completed move to JSON format.
func convertSingleMove(pm playedMove) JSONMove {
	rec := pm.rec
	move := rec.Move
	move.Promotion = rec.Promotion

	jm := JSONMove{
		Color:     colorName(rec.Piece.Colour),
		SAN:       engine.Notation(rec, pm.after),
		UCI:       engine.UCI(move),
		From:      move.From.String(),
		To:        move.To.String(),
		Piece:     pieceTypeName(rec.Piece.Type),
		Castling:  move.Castling,
		EnPassant: move.EnPassant,
		FEN:       engine.PositionToFEN(pm.after),
	}
	if rec.IsCapture() {
		jm.Captured = pieceTypeName(rec.Captured.Type)
	}
	if rec.Promotion != chess.NoPieceType {
		jm.Promotion = pieceTypeName(rec.Promotion)
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the lowercase name of a piece type.
func pieceTypeName(p chess.PieceType) string {
	if p == chess.NoPieceType {
		return ""
	}
	return strings.ToLower(p.String())
}
