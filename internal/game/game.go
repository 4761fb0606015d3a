// Package game provides a playable chess game session: one position, its
// move history and the promotion handshake, on top of the rules engine.
package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game holds the authoritative position and the history needed to undo it.
// A Game is not safe for concurrent use.
type Game struct {
	pos     *chess.Position
	start   *chess.Position
	history []*chess.MoveRecord
	san     []string // SAN per history entry, empty while a promotion is pending
	logger  zerolog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger that receives move events at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithPosition starts the game from a copy of pos instead of the
// standard initial position.
func WithPosition(pos *chess.Position) Option {
	return func(g *Game) {
		g.pos = pos.Clone()
	}
}

// New creates a game at the standard initial position.
func New(opts ...Option) *Game {
	g := &Game{
		pos:    chess.NewInitialPosition(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.start = g.pos.Clone()
	return g
}

// NewFromFEN creates a game starting from a FEN position.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithPosition(pos)}, opts...)...), nil
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Clone()
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.pos.SideToMove
}

// Pending returns the outstanding promotion, or nil.
func (g *Game) Pending() *chess.PendingPromotion {
	if g.pos.Pending == nil {
		return nil
	}
	pending := *g.pos.Pending
	return &pending
}

// LegalMovesFrom returns the legal moves of the piece on sq in generation
// order. A finished game has none.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Move {
	if g.IsOver() {
		return nil
	}
	return engine.LegalMovesFrom(g.pos, sq)
}

// IsOver reports whether the game ended by checkmate, stalemate or the
// fifty-move rule. Only Undo changes a finished game.
func (g *Game) IsOver() bool {
	return g.Status().IsOver()
}

// ApplyMove validates and applies a move. When the move brings a pawn to
// the last rank without a promotion piece, the returned PendingPromotion
// is non-nil and the turn stays with the mover until ChoosePromotion.
// Errors wrap the engine sentinel, or ErrGameOver once the game has ended,
// in a MoveError; the game is unchanged.
func (g *Game) ApplyMove(move chess.Move) (*chess.MoveRecord, *chess.PendingPromotion, error) {
	side := g.pos.SideToMove
	var rec *chess.MoveRecord
	err := errors.ErrGameOver
	if !g.IsOver() {
		rec, err = engine.ApplyMove(g.pos, move)
	}
	if err != nil {
		moveErr := &errors.MoveError{
			Err:      err,
			PlyNum:   len(g.history) + 1,
			Side:     side.String(),
			MoveText: engine.UCI(move),
		}
		g.logger.Debug().Err(err).Str("move", moveErr.MoveText).Int("ply", moveErr.PlyNum).Msg("move rejected")
		return nil, nil, moveErr
	}

	g.history = append(g.history, rec)
	g.san = append(g.san, "")
	if g.pos.Pending != nil {
		g.logger.Debug().Str("move", engine.UCI(rec.Move)).Int("ply", len(g.history)).Msg("promotion pending")
		return rec, g.Pending(), nil
	}

	g.complete()
	return rec, nil, nil
}

// Play parses move text in SAN, UCI or long algebraic form and applies it.
func (g *Game) Play(text string) (*chess.MoveRecord, *chess.PendingPromotion, error) {
	if g.pos.Pending != nil {
		return nil, nil, g.moveError(errors.ErrPromotionPending, text)
	}
	if g.IsOver() {
		g.logger.Debug().Str("move", text).Msg("move rejected, game over")
		return nil, nil, g.moveError(errors.ErrGameOver, text)
	}
	move, err := engine.ParseMove(g.pos, text)
	if err != nil {
		g.logger.Debug().Err(err).Str("move", text).Msg("move rejected")
		return nil, nil, g.moveError(err, text)
	}
	return g.ApplyMove(move)
}

// ChoosePromotion completes the pending promotion with the chosen piece.
func (g *Game) ChoosePromotion(pieceType chess.PieceType) error {
	if g.pos.Pending == nil || len(g.history) == 0 {
		return errors.ErrNoPendingPromotion
	}
	rec := g.history[len(g.history)-1]
	if err := engine.ChoosePromotion(g.pos, rec, pieceType); err != nil {
		return err
	}
	g.complete()
	return nil
}

// complete caches the SAN of the last record once its move has finished.
func (g *Game) complete() {
	last := len(g.history) - 1
	rec := g.history[last]
	g.san[last] = engine.Notation(rec, g.pos)
	g.logger.Debug().
		Str("move", g.san[last]).
		Str("uci", engine.FormatMove(engine.FormatUCI, rec, g.pos)).
		Int("ply", last+1).
		Msg("move applied")
}

// Undo reverts the most recent move, completed or pending. It returns
// false when there is nothing to undo.
func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}
	last := len(g.history) - 1
	rec := g.history[last]
	engine.UnmakeMove(g.pos, rec)
	g.history = g.history[:last]
	g.san = g.san[:last]
	g.logger.Debug().Str("move", engine.UCI(rec.Move)).Int("ply", last+1).Msg("move undone")
	return true
}

// Status evaluates the position for the side to move.
func (g *Game) Status() engine.Status {
	return engine.GameStatus(g.pos)
}

// History returns the move records, oldest first.
func (g *Game) History() []*chess.MoveRecord {
	return append([]*chess.MoveRecord(nil), g.history...)
}

// LastMove returns the most recent record, or nil.
func (g *Game) LastMove() *chess.MoveRecord {
	if len(g.history) == 0 {
		return nil
	}
	return g.history[len(g.history)-1]
}

// Plies returns the number of moves in the history.
func (g *Game) Plies() int {
	return len(g.history)
}

// MoveList returns the SAN of every completed move.
func (g *Game) MoveList() []string {
	moves := make([]string, 0, len(g.san))
	for _, s := range g.san {
		if s != "" {
			moves = append(moves, s)
		}
	}
	return moves
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return engine.PositionToFEN(g.pos)
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return engine.PositionToFEN(g.start)
}

// StartPosition returns a copy of the position the game started from.
func (g *Game) StartPosition() *chess.Position {
	return g.start.Clone()
}

func (g *Game) moveError(err error, text string) error {
	return &errors.MoveError{
		Err:      err,
		PlyNum:   len(g.history) + 1,
		Side:     g.pos.SideToMove.String(),
		MoveText: text,
	}
}

// String returns the status line with the move count.
func (g *Game) String() string {
	return fmt.Sprintf("%s after %d plies", g.Status(), len(g.history))
}
