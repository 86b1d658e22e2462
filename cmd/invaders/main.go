package main

import (
	"bytes"
	"log"
	"os"

	"tty-invaders/internal/client"
	"tty-invaders/internal/config"
	"tty-invaders/internal/models"
)

func main() {
	log.Println("Starting Space Invaders...")

	cfg, err := config.Default()
	if err != nil {
		log.Fatalf("Failed to load game config: %v", err)
	}

	ui := client.NewTermboxUI(cfg.Glyphs())
	if err := ui.Init(); err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}

	// termbox owns the screen until Close, so hold the log until then.
	var logBuf bytes.Buffer
	log.SetOutput(&logBuf)
	err = play(ui, cfg)
	ui.Close()
	log.SetOutput(os.Stderr)
	os.Stderr.Write(logBuf.Bytes())

	if err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}

func play(ui *client.TermboxUI, cfg *models.GameConfig) error {
	if !ui.ShowStartScreen(cfg.Keys) {
		log.Println("ESC pressed on the start screen. Leaving.")
		return nil
	}

	session, err := client.NewSession(*cfg, ui, ui)
	if err != nil {
		return err
	}
	session.Run()
	return nil
}
