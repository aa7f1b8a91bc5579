package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rental-server/confs"
	"rental-server/db"
	"rental-server/seed"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	plain := flag.Bool("plain", false, "print progress instead of running the interactive UI")
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer database.Close()

	data, err := seed.LoadData()
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	steps := seed.Steps(database, data)

	if *plain {
		for _, step := range steps {
			log.Println(step.Name + "...")
			if err := step.Run(); err != nil {
				database.Close()
				log.Fatalf("%s failed: %v", step.Name, err)
			}
		}
		log.Println("Database seeded")
		return
	}

	p := tea.NewProgram(initialModel(targetName(cfg), steps, *yes))
	final, err := p.Run()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if m, ok := final.(model); ok && m.stage == stageFailed {
		database.Close()
		os.Exit(1)
	}
}

func targetName(cfg *confs.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DBDriver + " (DB_URL)"
	}
	return fmt.Sprintf("%s %s/%s", cfg.DBDriver, cfg.DBHost, cfg.DBName)
}
