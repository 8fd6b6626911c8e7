package application

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/config"
	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/entity"
	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/match"
	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/quoridor"
	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/renderer"
)

// RunApp - runs one interactive match on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	game := entity.NewGame()
	gameController := quoridor.NewGameController(logger, game)
	boardRenderer := renderer.New(os.Stdout)

	log.Info("Starting match", "player1", conf.Players.One, "player2", conf.Players.Two)

	gameMatch := match.New(logger, gameController, boardRenderer, os.Stdin, os.Stdout, conf.Players.One, conf.Players.Two)

	return gameMatch.Run(ctx)
}
