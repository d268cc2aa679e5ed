package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"catchthatlemon/internal/app"
	"catchthatlemon/internal/config"
	"catchthatlemon/internal/store"
	"catchthatlemon/internal/ui/terminal"
)

const logFile = "lemon-term.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lemon-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("lemon-term", os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	scores, err := store.New(cfg.DataDir, []byte(cfg.ChecksumKey))
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}

	// The terminal belongs to the game, so logs go to a file.
	f, err := os.OpenFile(filepath.Join(cfg.DataDir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)
	log.SetFlags(log.Ltime | log.Lshortfile)

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()

	ui := terminal.New(screen)

	var sound *terminal.Sound
	var player app.Audio
	if !cfg.Mute {
		sound = terminal.NewSound(cfg.SoundsDir, app.EffectFiles())
		defer sound.Close()
		player = sound
	}

	application := app.New(app.Options{
		Config:   cfg,
		Scores:   scores,
		Audio:    player,
		Prompter: ui,
	})
	ui.Attach(application)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application.Start()
	defer application.Shutdown()
	return ui.Run(ctx)
}
