package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedropiresdev/c2s-challenge/internal/automobile"
	"github.com/pedropiresdev/c2s-challenge/internal/common/config"
	"github.com/pedropiresdev/c2s-challenge/internal/common/db"
	"github.com/pedropiresdev/c2s-challenge/internal/common/logger"
	"github.com/pedropiresdev/c2s-challenge/internal/common/middleware"
	"github.com/pedropiresdev/c2s-challenge/internal/common/server"
	"github.com/pedropiresdev/c2s-challenge/internal/common/tracing"
)

var configPath = flag.String("config", "configs/inventory-service.json", "config file path")

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

	if cfg.Jaeger.Enabled {
		_, closer, err := tracing.InitTracer(cfg.Server.Name, cfg.Jaeger.Endpoint, cfg.Jaeger.Sampler)
		if err != nil {
			log.Warnf("failed to init tracer: %v", err)
		} else {
			defer closer.Close()
		}
	}

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := gormDB.AutoMigrate(&automobile.Automobile{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	handler := automobile.NewHandler(automobile.NewService(automobile.NewRepo(gormDB)), log)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.AccessLog(log),
		middleware.CORS(),
	)
	if cfg.RateLimit.Enabled {
		engine.Use(middleware.RateLimit(middleware.NewTokenBucket(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)))
	}
	if cfg.Jaeger.Enabled {
		engine.Use(tracing.HTTPMiddleware(cfg.Server.Name))
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.Register(engine.Group("/automobiles"))

	if err := server.RunHTTPServer(cfg, log, engine); err != nil {
		log.Fatalf("inventory-service exited with error: %v", err)
	}
}
