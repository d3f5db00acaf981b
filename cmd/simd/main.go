package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/whiskerworks/adventure-engine/internal/config"
	"github.com/whiskerworks/adventure-engine/internal/delivery"
	"github.com/whiskerworks/adventure-engine/internal/logger"
	"github.com/whiskerworks/adventure-engine/internal/storage"
	"github.com/whiskerworks/adventure-engine/internal/worker"
	"github.com/whiskerworks/adventure-engine/pkg/sim"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Adventure Engine daemon",
		"environment", cfg.Environment,
		"redis_url", cfg.RedisURL,
		"tick_interval", cfg.TickInterval)

	storageService := storage.NewRedisStorage(cfg.RedisURL, log)
	defer func() {
		if err := storageService.Close(); err != nil {
			log.Error("Error closing storage", "error", err)
		}
	}()

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if err := storageService.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage service initialized successfully")

	probs := sim.Probabilities{
		Happening:      cfg.HappeningChance,
		QuestEncounter: cfg.QuestEncounterChance,
		BonusDie:       cfg.BonusDieChance,
	}
	sink := delivery.NewWriterSink(os.Stdout)
	w := worker.New(storageService, sink, log, probs, cfg.TickInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := w.Start(); err != nil {
			log.Error("Worker error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("Daemon started, advancing adventures", "tick_interval", cfg.TickInterval)

	<-quit
	log.Info("Shutdown signal received")

	w.Stop()

	// Give the current tick pass time to finish
	time.Sleep(2 * time.Second)

	log.Info("Daemon exited")
}
