package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	app "github.com/rocketscienceinc/tictactoe-bot/internal"
	"github.com/rocketscienceinc/tictactoe-bot/internal/config"
	"github.com/rocketscienceinc/tictactoe-bot/transport/console"
)

// main - plays a game in the terminal against the same use case the servers expose.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	// logs go to stderr so they do not mix with the board.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.ParseLevel(conf.LogLevel)}))

	ctx, cancel := app.WithSignals(context.Background(), logger)
	defer cancel()

	gameUseCase, closeStorage, err := app.NewGameManager(ctx, logger, conf)
	if err != nil {
		panic(fmt.Errorf("failed to init game: %w", err))
	}

	defer closeStorage()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ttt> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".tictactoe_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		panic(fmt.Errorf("failed to init readline: %w", err))
	}

	defer rl.Close()

	output := termenv.NewOutput(rl.Stdout())

	if err = console.New(logger, gameUseCase, rl, output, uuid.NewString()).Run(ctx); err != nil {
		panic(fmt.Errorf("console run failed: %w", err))
	}
}

// initialize config, falling back to the environment when config.yml is absent.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	path := filepath.Join(baseDir, "./config.yml")
	if _, err = os.Stat(path); err != nil {
		return config.MustLoadEnv()
	}

	return config.MustLoad(path)
}
