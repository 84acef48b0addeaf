package main

import (
	"context"
	"log"
	"os"

	"agency-cms/internal/config"
	"agency-cms/internal/db"
	"agency-cms/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool, logger); err != nil {
		logger.Fatalf("seed: %v", err)
	}
	logger.Printf("seed data applied")
}
