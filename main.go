package main

import (
	"log"

	"rental-server/confs"
	"rental-server/db"
	"rental-server/server"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if err := server.NewServer(cfg, database).Start(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
