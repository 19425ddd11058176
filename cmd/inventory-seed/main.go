package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pedropiresdev/c2s-challenge/internal/automobile"
	"github.com/pedropiresdev/c2s-challenge/internal/common/config"
	"github.com/pedropiresdev/c2s-challenge/internal/common/db"
	"github.com/pedropiresdev/c2s-challenge/internal/common/logger"
	"github.com/pedropiresdev/c2s-challenge/internal/seed"
)

var (
	configPath = flag.String("config", "configs/inventory-service.json", "config file path")
	count      = flag.Int("n", 50, "number of records to generate")
	randSeed   = flag.Uint64("seed", 0, "random seed (0 = non-deterministic)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Backend, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := gormDB.AutoMigrate(&automobile.Automobile{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	svc := automobile.NewService(automobile.NewRepo(gormDB))
	inserted, err := seed.Run(context.Background(), svc, seed.NewGenerator(*randSeed), *count, log)
	if err != nil {
		log.Fatalf("seeding failed after %d records: %v", inserted, err)
	}
	log.Infof("inserted %d automobiles", inserted)
}
