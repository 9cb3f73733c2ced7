package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fillergame/fillerbot/internal/config"
	"github.com/fillergame/fillerbot/internal/game"
	"github.com/fillergame/fillerbot/internal/game/core"
	"github.com/fillergame/fillerbot/internal/protocol"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel)

	// One session per process; the ID ties together every log line of
	// the game this process plays.
	logger := log.With().Str("session_id", uuid.New().String()).Logger()
	logger.Info().Msg("Starting filler bot")

	// Re-read heuristic weights at the top of every turn so config
	// edits land mid-game.
	config.WatchConfig(func() {
		logger.Info().Msg("Config reloaded")
	})

	if err := run(os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("Game loop failed")
	}
	logger.Info().Msg("Input stream closed, shutting down")
}

// run plays turns until the input stream ends. Framing errors are
// answered with the pass move and the loop keeps reading; the engine
// treats an invalid answer line as a forfeit, a pass merely skips the
// turn.
func run(in io.Reader, out io.Writer, logger zerolog.Logger) error {
	parser := protocol.NewParser(in, logger)
	w := bufio.NewWriter(out)

	for {
		turn, err := parser.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			logger.Error().Err(err).Msg("Failed to parse turn, passing")
			if err := respond(w, game.PassMove); err != nil {
				return err
			}
			continue
		}

		if e := logger.Debug(); e.Enabled() {
			e.Msg("Board state:\n" + game.BoardString(turn.Board))
		}

		params := heuristicParams(config.Get())
		move, ok := game.ChooseMove(turn.Board, turn.Player, turn.Piece, params, logger)
		if !ok {
			logger.Info().Msg("Passing this turn")
		}
		if err := respond(w, move); err != nil {
			return err
		}
	}
}

func respond(w *bufio.Writer, move core.Coordinate) error {
	if err := protocol.WriteMove(w, move); err != nil {
		return err
	}
	return w.Flush()
}

// heuristicParams maps the config snapshot onto the scorer's params.
func heuristicParams(cfg *config.Config) game.HeuristicParams {
	h := cfg.Heuristic
	return game.HeuristicParams{
		Early:              weights(h.Early),
		Mid:                weights(h.Mid),
		Late:               weights(h.Late),
		EarlyCutoff:        h.EarlyCutoff,
		LateCutoff:         h.LateCutoff,
		AggressionBonus:    h.AggressionBonus,
		ConnectivityRadius: h.ConnectivityRadius,
		ConnectivityScale:  h.ConnectivityScale,
	}
}

func weights(w config.PhaseWeightsConfig) game.Weights {
	return game.Weights{
		Territory: w.Territory,
		Liberties: w.Liberties,
		Pressure:  w.Pressure,
		Heat:      w.Heat,
	}
}

func setupLogging(level string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// stdout is the protocol channel; all logging goes to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
