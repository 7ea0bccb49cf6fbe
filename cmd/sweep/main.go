package main

import (
	"context"
	"flag"
	"log"
	"time"

	"lawyerhub/config"
	"lawyerhub/db"
	"lawyerhub/services"
)

// One-shot batch recompute over every listed lawyer, meant for cron.
func main() {
	configPath := flag.String("config", "./config/config.prod.yml", "path to the configuration file")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall sweep deadline")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	services.InitRewardService(cfg)

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := services.RunRewardSweep(ctx, cfg.SweepConcurrency())
	if err != nil {
		if result != nil {
			log.Fatalf("Sweep failed after %d processed, %d failed: %v", result.Processed, result.Failed, err)
		}
		log.Fatalf("Sweep failed: %v", err)
	}

	log.Printf("Sweep done: %d processed, %d failed in %s", result.Processed, result.Failed, result.Duration)
}
