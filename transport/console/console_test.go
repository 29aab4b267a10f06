package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
)

type readResult struct {
	line string
	err  error
}

type fakeReader struct {
	results []readResult
	prompts int
}

func (that *fakeReader) Readline() (string, error) {
	if len(that.results) == 0 {
		return "", io.EOF
	}

	next := that.results[0]
	that.results = that.results[1:]

	return next.line, next.err
}

func (that *fakeReader) SetPrompt(string) {
	that.prompts++
}

func lines(values ...string) *fakeReader {
	reader := &fakeReader{}
	for _, value := range values {
		reader.results = append(reader.results, readResult{line: value})
	}

	return reader
}

func newTestConsole(reader lineReader, out *bytes.Buffer) *Console {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bot := tictactoe.NewBot(func(int) int { return 0 })
	manager := usecase.NewGameManager(logger, repository.NewMemoryRepository(), tictactoe.NewGameController(bot), 0)
	output := termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))

	return New(logger, manager, reader, output, "local")
}

func TestConsole_PlaysToWin(t *testing.T) {
	// Given the bot always takes the first free cell
	var out bytes.Buffer
	reader := lines("/start", "11", "0 1", "21")

	// When
	err := newTestConsole(reader, &out).Run(context.Background())

	// Then
	require.NoError(t, err)
	assert.Contains(t, out.String(), usecase.TextStart)
	assert.Contains(t, out.String(), usecase.TextHumanTurn)
	assert.Contains(t, out.String(), usecase.TextBotTurn)
	assert.Contains(t, out.String(), "WOW! X is winner!")
	assert.Contains(t, out.String(), "  2 . X .")
	assert.Equal(t, 5, reader.prompts)
}

func TestConsole_OccupiedCell(t *testing.T) {
	// Given
	var out bytes.Buffer
	reader := lines("/start", "11", "11")

	// When
	err := newTestConsole(reader, &out).Run(context.Background())

	// Then
	require.NoError(t, err)
	assert.Contains(t, out.String(), usecase.TextCellOccupied)
}

func TestConsole_UnknownCommand(t *testing.T) {
	// Given
	var out bytes.Buffer
	reader := lines("/dance", "help", "exit", "/start")

	// When
	err := newTestConsole(reader, &out).Run(context.Background())

	// Then
	require.NoError(t, err)
	assert.Contains(t, out.String(), `Unknown command "/dance"`)
	assert.Contains(t, out.String(), helpText)
	assert.NotContains(t, out.String(), usecase.TextStart)
}

func TestConsole_InterruptOnEmptyLineExits(t *testing.T) {
	// Given
	var out bytes.Buffer
	reader := &fakeReader{results: []readResult{
		{line: "half typed", err: readline.ErrInterrupt},
		{line: "", err: readline.ErrInterrupt},
		{line: "/start"},
	}}

	// When
	err := newTestConsole(reader, &out).Run(context.Background())

	// Then
	require.NoError(t, err)
	assert.NotContains(t, out.String(), usecase.TextStart)
	assert.Len(t, reader.results, 1)
}

func TestConsole_ReadError(t *testing.T) {
	// Given
	var out bytes.Buffer
	reader := &fakeReader{results: []readResult{{err: errors.New("tty gone")}}}

	// When
	err := newTestConsole(reader, &out).Run(context.Background())

	// Then
	require.ErrorContains(t, err, "tty gone")
}

func TestConsole_StopsOnCanceledContext(t *testing.T) {
	// Given
	var out bytes.Buffer
	reader := lines("/start")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When
	err := newTestConsole(reader, &out).Run(ctx)

	// Then
	require.NoError(t, err)
	assert.Len(t, reader.results, 1)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "11", normalize(" 1 1 "))
	assert.Equal(t, "/start", normalize(" /START "))
	assert.Equal(t, "exit", normalize("Exit"))
	assert.Equal(t, "", normalize("   "))
}
