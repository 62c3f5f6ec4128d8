package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Klaviaadus/Cosmic-Feline/internal/chat"
	"github.com/Klaviaadus/Cosmic-Feline/internal/storage"
	"github.com/Klaviaadus/Cosmic-Feline/internal/ui"
)

type config struct {
	StateDir    string        `env:"COSMIC_FELINE_STATE_DIR"`
	ChatURL     string        `env:"COSMIC_FELINE_CHAT_URL" envDefault:"http://localhost:8787/api/chat"`
	ChatTimeout time.Duration `env:"COSMIC_FELINE_CHAT_TIMEOUT" envDefault:"30s"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Error parsing configuration: %v\n", err)
		os.Exit(1)
	}

	if cfg.StateDir == "" {
		dir, err := storage.DefaultDir()
		if err != nil {
			fmt.Printf("Error locating state directory: %v\n", err)
			os.Exit(1)
		}
		cfg.StateDir = dir
	}

	store := storage.NewStore(cfg.StateDir)

	// Keep log noise off the TUI; state load/save details go to a log file
	// under the state directory when one can be opened.
	logPath := filepath.Join(cfg.StateDir, "cosmic-feline.log")
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
		defer f.Close()
		log.SetOutput(f)
	}
	relay := chat.NewClient(cfg.ChatURL, cfg.ChatTimeout)

	p := tea.NewProgram(ui.NewModel(store, relay))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
