package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
)

const helpText = `Commands:
  /start   start a new game
  /reset   drop the current game
  RC       put X at row R, column C (e.g. 11 is the center)
  help     show this help
  exit     quit`

type gameUseCase interface {
	Handle(ctx context.Context, sessionID, token string, presenter usecase.Presenter) error
}

// lineReader is the part of *readline.Instance the console needs.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Console plays one chat session in the terminal.
type Console struct {
	logger      *slog.Logger
	gameUseCase gameUseCase

	reader    lineReader
	output    *termenv.Output
	sessionID string
}

func New(logger *slog.Logger, gameUseCase gameUseCase, reader lineReader, output *termenv.Output, sessionID string) *Console {
	return &Console{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
		reader:      reader,
		output:      output,
		sessionID:   sessionID,
	}
}

// Run reads commands until exit, EOF or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run", "sessionID", that.sessionID)

	that.println(that.output.String("Tic-tac-toe. You play X.").Bold().String())
	that.println("Type /start to begin, help for commands.")

	for {
		if ctx.Err() != nil {
			return nil
		}

		that.reader.SetPrompt(that.prompt())

		line, err := that.reader.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("failed to read line: %w", err)
		}

		command := normalize(line)
		switch command {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			that.println(helpText)
			continue
		}

		err = that.gameUseCase.Handle(ctx, that.sessionID, command, usecase.PresenterFunc(that.present))
		switch {
		case errors.Is(err, apperror.ErrUnknownCommand), errors.Is(err, apperror.ErrInvalidToken):
			that.println(that.warn(fmt.Sprintf("Unknown command %q, type help", command)))
		case err != nil:
			log.Error("failed to handle command", "command", command, "error", err)
			that.println(that.warn("Something went wrong, try /start"))
		}
	}
}

func (that *Console) present(_ context.Context, view *entity.View) error {
	that.println(that.render(view))
	return nil
}

// render draws the view text and the board with row and column indices.
func (that *Console) render(view *entity.View) string {
	var sb strings.Builder

	sb.WriteString(view.Text)
	sb.WriteString("\n\n    0 1 2\n")

	for r, row := range view.Keyboard {
		sb.WriteString(fmt.Sprintf("  %d ", r))
		for c, button := range row {
			if c > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(that.symbol(button.Text))
		}
		sb.WriteString("\n")
	}

	if view.Result != "" && view.Result != view.Text {
		sb.WriteString("\n")
		sb.WriteString(that.output.String(view.Result).Bold().String())
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Console) symbol(text string) string {
	switch text {
	case entity.Cross.Symbol():
		return that.output.String(text).Foreground(termenv.ANSIBrightBlue).Bold().String()
	case entity.Circle.Symbol():
		return that.output.String(text).Foreground(termenv.ANSIBrightRed).Bold().String()
	default:
		return that.output.String(text).Faint().String()
	}
}

func (that *Console) warn(text string) string {
	return that.output.String(text).Foreground(termenv.ANSIYellow).String()
}

func (that *Console) prompt() string {
	return that.output.String("ttt> ").Foreground(termenv.ANSICyan).String()
}

func (that *Console) println(text string) {
	fmt.Fprintln(that.output, text)
}

// normalize accepts "1 1" and " /START " as well as the canonical forms.
func normalize(line string) string {
	line = strings.ToLower(strings.TrimSpace(line))
	if strings.HasPrefix(line, "/") {
		return line
	}

	return strings.Join(strings.Fields(line), "")
}
