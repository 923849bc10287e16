package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitrinedev/vitrine/internal/config"
	"github.com/vitrinedev/vitrine/internal/database"
	"github.com/vitrinedev/vitrine/internal/database/repository"
	"github.com/vitrinedev/vitrine/internal/manifest"
	"github.com/vitrinedev/vitrine/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if len(os.Args) > 1 {
		cfg.Manifest.Source = os.Args[1]
	}

	// History is best-effort: any failure here degrades to a session
	// without persistence instead of blocking the showcase.
	var history *repository.HistoryRepo
	if cfg.History.Enabled {
		if db := openHistoryDB(cfg.Database.Path); db != nil {
			defer db.Close()
			history = repository.NewHistoryRepo(db)
		}
	}

	p := tea.NewProgram(
		tui.New(ctx, cfg, manifest.NewLoader(), history),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func openHistoryDB(path string) *sql.DB {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("warn: history disabled: mkdir db dir: %v", err)
		return nil
	}
	if err := database.RunMigrations(path); err != nil {
		log.Printf("warn: history disabled: migrate: %v", err)
		return nil
	}
	db, err := database.Open(path)
	if err != nil {
		log.Printf("warn: history disabled: open db: %v", err)
		return nil
	}
	return db
}
