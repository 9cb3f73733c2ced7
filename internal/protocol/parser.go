// Package protocol reads the line protocol spoken by the game engine
// and frames it into per-turn values for the decision code. One turn is
// a board section ("Anfield W H:" plus rows) followed by a piece
// section ("Piece W H:" plus rows); the player identity is announced
// once at startup.
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fillergame/fillerbot/internal/game/core"
)

const (
	playerPrefix = "$$$ exec p"
	boardPrefix  = "Anfield "
	piecePrefix  = "Piece "

	// Board rows carry a row-number label, e.g. "000 ....".
	rowLabelLen = 4
)

var (
	ErrTruncatedInput = errors.New("unexpected end of input")
	ErrBadHeader      = errors.New("malformed section header")
	ErrShortRow       = errors.New("row shorter than declared width")
	ErrBadSymbol      = errors.New("unknown cell symbol")
)

// TurnInput is one fully parsed turn, ready for move selection.
type TurnInput struct {
	Player core.Player
	Board  *core.Board
	Piece  *core.Piece
}

// Parser frames the engine's stdin stream into turns. The player
// identity persists across turns once announced.
type Parser struct {
	sc     *bufio.Scanner
	player core.Player
	logger zerolog.Logger
}

func NewParser(r io.Reader, logger zerolog.Logger) *Parser {
	return &Parser{
		sc:     bufio.NewScanner(r),
		player: core.PlayerOne,
		logger: logger,
	}
}

// Next reads until it has assembled a complete turn. It returns io.EOF
// once the stream ends between turns; any error mid-section means the
// turn is unusable and the caller should answer with a pass.
func (p *Parser) Next() (*TurnInput, error) {
	for {
		line, err := p.readLine(io.EOF)
		if err != nil {
			return nil, err
		}

		switch {
		case strings.HasPrefix(line, playerPrefix):
			p.parsePlayer(line)
		case strings.HasPrefix(line, boardPrefix):
			return p.parseTurn(line)
		}
	}
}

// parsePlayer extracts the player number from "$$$ exec p<N> : [...]".
func (p *Parser) parsePlayer(line string) {
	rest := line[len(playerPrefix):]
	if strings.HasPrefix(rest, "2") {
		p.player = core.PlayerTwo
	} else {
		p.player = core.PlayerOne
	}
	p.logger.Info().Int("player", int(p.player)).Msg("Player identity assigned")
}

// parseTurn consumes a board section and the piece section that
// follows it.
func (p *Parser) parseTurn(header string) (*TurnInput, error) {
	w, h, err := parseDimensions(header)
	if err != nil {
		return nil, err
	}

	// Column-header line between the board header and the first row.
	if _, err := p.readLine(ErrTruncatedInput); err != nil {
		return nil, err
	}

	board := core.NewBoard(w, h)
	for y := 0; y < h; y++ {
		line, err := p.readLine(ErrTruncatedInput)
		if err != nil {
			return nil, err
		}
		if err := parseBoardRow(board, line, y); err != nil {
			return nil, err
		}
	}

	piece, err := p.parsePiece()
	if err != nil {
		return nil, err
	}

	p.logger.Debug().
		Int("board_w", board.W).Int("board_h", board.H).
		Int("piece_w", piece.W).Int("piece_h", piece.H).
		Msg("Parsed turn input")

	return &TurnInput{Player: p.player, Board: board, Piece: piece}, nil
}

// parsePiece scans forward to the piece header and reads its rows.
func (p *Parser) parsePiece() (*core.Piece, error) {
	for {
		line, err := p.readLine(ErrTruncatedInput)
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(line, piecePrefix) {
			continue
		}

		w, h, err := parseDimensions(line)
		if err != nil {
			return nil, err
		}

		piece := core.NewPiece(w, h)
		for y := 0; y < h; y++ {
			row, err := p.readLine(ErrTruncatedInput)
			if err != nil {
				return nil, err
			}
			if err := parsePieceRow(piece, row, y); err != nil {
				return nil, err
			}
		}
		return piece, nil
	}
}

// readLine returns the next line, or atEnd when the stream is exhausted.
func (p *Parser) readLine(atEnd error) (string, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", atEnd
	}
	return p.sc.Text(), nil
}

// parseDimensions extracts W and H from a "<Name> <W> <H>:" header.
func parseDimensions(line string) (w, h int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	w, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadHeader, line, err)
	}
	h, err = strconv.Atoi(strings.TrimSuffix(fields[2], ":"))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadHeader, line, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: non-positive dimensions in %q", ErrBadHeader, line)
	}
	return w, h, nil
}

func parseBoardRow(b *core.Board, line string, y int) error {
	if len(line) >= rowLabelLen {
		line = line[rowLabelLen:]
	}
	if len(line) < b.W {
		return fmt.Errorf("%w: board row %d", ErrShortRow, y)
	}
	for x := 0; x < b.W; x++ {
		switch line[x] {
		case '.':
			b.SetCell(x, y, core.CellEmpty)
		case '@', 'a':
			b.SetCell(x, y, core.CellPlayer1)
		case '$', 's':
			b.SetCell(x, y, core.CellPlayer2)
		default:
			return fmt.Errorf("%w: %q in board row %d", ErrBadSymbol, line[x], y)
		}
	}
	return nil
}

func parsePieceRow(p *core.Piece, line string, y int) error {
	if len(line) < p.W {
		return fmt.Errorf("%w: piece row %d", ErrShortRow, y)
	}
	for x := 0; x < p.W; x++ {
		switch line[x] {
		case '.':
			p.SetCell(x, y, core.PieceEmpty)
		case '#', 'O', 'o':
			p.SetCell(x, y, core.PieceFilled)
		default:
			return fmt.Errorf("%w: %q in piece row %d", ErrBadSymbol, line[x], y)
		}
	}
	return nil
}
