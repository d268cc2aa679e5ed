package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catchthatlemon/internal/app"
	"catchthatlemon/internal/audio"
	"catchthatlemon/internal/config"
	"catchthatlemon/internal/store"
	"catchthatlemon/internal/ui/graphics"
	"catchthatlemon/internal/ui/graphics/screens"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := config.Load("lemon", os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	scores, err := store.New(cfg.DataDir, []byte(cfg.ChecksumKey))
	if err != nil {
		log.Fatalf("Failed to open score store: %v", err)
	}

	sprites, err := graphics.LoadSprites(cfg.SpritesDir, cfg.BackgroundsDir)
	if err != nil {
		log.Printf("Warning: %v, drawing without images", err)
	}

	engine := graphics.NewEngine(sprites)

	var player app.Audio
	if !cfg.Mute {
		player = audio.New(cfg.SoundsDir, app.EffectFiles())
	}

	application := app.New(app.Options{
		Config:   cfg,
		Scores:   scores,
		Audio:    player,
		Prompter: engine.Prompter(),
	})
	engine.Attach(application)
	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewOptionsScreen(engine),
		screens.NewGameScreen(engine),
		screens.NewGameOverScreen(engine),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		engine.Stop()
	}()

	application.Start()
	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
	application.Shutdown()
}
