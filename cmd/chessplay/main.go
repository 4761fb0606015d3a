// chessplay plays a game of chess from a list of commands and reports the
// moves, the game status and optionally an SVG diagram of the final position.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/diagram"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := cfg.Logger()

	var commands []string
	if flag.NArg() > 0 {
		commands = tokenize(strings.NewReader(strings.Join(flag.Args(), " ")))
	} else {
		commands = tokenize(os.Stdin)
	}

	rejected, err := run(cfg, logger, commands)
	if err != nil {
		logger.Error().Err(err).Msg("chessplay failed")
		os.Exit(1)
	}
	if rejected > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// tokenize splits command text into words, dropping move numbers such as
// "1." or "12..." so pasted move lists can be replayed.
func tokenize(r io.Reader) []string {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var tokens []string
	for scanner.Scan() {
		tok := scanner.Text()
		if isMoveNumber(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// isMoveNumber reports whether tok is a move number like "3." or "3...".
func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// session executes commands against one game.
type session struct {
	cfg      *config.Config
	logger   zerolog.Logger
	game     *game.Game
	out      io.Writer
	rejected int
}

// run plays the commands, writes the report and the optional diagram, and
// returns the number of rejected commands.
func run(cfg *config.Config, logger zerolog.Logger, commands []string) (int, error) {
	g, err := game.NewFromFEN(cfg.StartFEN(), game.WithLogger(logger))
	if err != nil {
		return 0, err
	}

	s := &session{cfg: cfg, logger: logger, game: g, out: cfg.OutputFile}
	s.execute(commands)

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := writer.WriteGame(g); err != nil {
		return s.rejected, err
	}
	if err := writer.Close(); err != nil {
		return s.rejected, err
	}

	if cfg.Diagram.Enabled() {
		opts := diagram.OptionsFromConfig(cfg.Diagram)
		if err := diagram.WriteFile(cfg.Diagram.File, g.Position(), g.LastMove(), opts); err != nil {
			return s.rejected, err
		}
		logger.Info().Str("file", cfg.Diagram.File).Msg("diagram written")
	}

	status := g.Status()
	logger.Info().
		Int("plies", g.Plies()).
		Str("status", status.Kind.String()).
		Str("result", status.Result()).
		Int("rejected", s.rejected).
		Msg("game finished")
	return s.rejected, nil
}

// execute runs each command in turn. Rejected commands are logged and
// counted; they do not stop the session.
func (s *session) execute(commands []string) {
	for i := 0; i < len(commands); i++ {
		cmd := commands[i]
		switch strings.ToLower(cmd) {
		case "undo":
			if !s.game.Undo() {
				s.reject(cmd, fmt.Errorf("nothing to undo"))
			}
		case "status":
			fmt.Fprintln(s.out, s.game.Status())
		case "fen":
			fmt.Fprintln(s.out, s.game.FEN())
		case "promote", "moves":
			if i+1 >= len(commands) {
				s.reject(cmd, fmt.Errorf("missing argument"))
				continue
			}
			i++
			if strings.ToLower(cmd) == "promote" {
				s.promote(commands[i])
			} else {
				s.listMoves(commands[i])
			}
		default:
			if _, _, err := s.game.Play(cmd); err != nil {
				s.reject(cmd, err)
			}
		}
	}
}

// promote completes a pending promotion; the piece is given by letter or name.
func (s *session) promote(arg string) {
	pt := chess.PieceTypeFromLetter(arg[0])
	if strings.EqualFold(arg, "knight") {
		pt = chess.Knight
	}
	if err := s.game.ChoosePromotion(pt); err != nil {
		s.reject("promote "+arg, err)
	}
}

// listMoves prints the destination squares of the piece on arg.
func (s *session) listMoves(arg string) {
	sq, ok := chess.ParseSquare(strings.ToLower(arg))
	if !ok {
		s.reject("moves "+arg, fmt.Errorf("invalid square %q", arg))
		return
	}
	moves := s.game.LegalMovesFrom(sq)
	targets := make([]string, len(moves))
	for i, m := range moves {
		targets[i] = m.To.String()
	}
	fmt.Fprintf(s.out, "%s: %s\n", sq, strings.Join(targets, " "))
}

func (s *session) reject(cmd string, err error) {
	s.rejected++
	s.logger.Warn().Err(err).Str("command", cmd).Msg("command rejected")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options] [commands...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a game of chess from commands given as arguments or on stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  e4, Nf3, e2e4, e7e8q  Play a move in SAN or coordinate form\n")
	fmt.Fprintf(os.Stderr, "  promote q             Choose the piece for a pending promotion\n")
	fmt.Fprintf(os.Stderr, "  undo                  Take back the last move\n")
	fmt.Fprintf(os.Stderr, "  moves e2              List the destinations of the piece on e2\n")
	fmt.Fprintf(os.Stderr, "  status                Print the game status\n")
	fmt.Fprintf(os.Stderr, "  fen                   Print the current position in FEN\n")
}
