package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pedropiresdev/c2s-challenge/internal/common/config"
	"github.com/pedropiresdev/c2s-challenge/internal/common/discovery"
	"github.com/pedropiresdev/c2s-challenge/internal/common/logger"
)

type RunHTTPOptions struct {
	ShutdownTimeout time.Duration
}

func defaultRunHTTPOptions() RunHTTPOptions {
	return RunHTTPOptions{ShutdownTimeout: 5 * time.Second}
}

// RunHTTPServer is the shared HTTP service template:
//   - serve the gin engine on the configured address
//   - register in Consul (HTTP /healthz check) when enabled
//   - graceful shutdown on SIGINT/SIGTERM with a bounded timeout
func RunHTTPServer(cfg *config.Config, log logger.Logger, engine *gin.Engine, opts ...func(*RunHTTPOptions)) error {
	if cfg == nil {
		return fmt.Errorf("cfg is nil")
	}
	if log == nil {
		return fmt.Errorf("log is nil")
	}
	if engine == nil {
		return fmt.Errorf("engine is nil")
	}

	o := defaultRunHTTPOptions()
	for _, apply := range opts {
		if apply != nil {
			apply(&o)
		}
	}

	if cfg.Consul.Enabled {
		consulClient, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port)
		if err != nil {
			log.Warnf("failed to connect to Consul: %v", err)
		} else {
			serviceID := fmt.Sprintf("%s-%s", cfg.Server.Name, uuid.NewString())
			registry := discovery.NewServiceRegistry(
				consulClient,
				serviceID,
				cfg.Server.Name,
				cfg.Server.Host,
				cfg.Server.Port,
				[]string{"http"},
			)
			if err := registry.Register(); err != nil {
				log.Warnf("failed to register service to Consul: %v", err)
			} else {
				log.Infof("service registered to Consul: %s", serviceID)
				defer func() {
					if err := registry.Deregister(); err != nil {
						log.Warnf("failed to deregister service from Consul: %v", err)
					}
				}()
			}
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: engine,
	}

	log.Infof("%s starting on %s", cfg.Server.Name, srv.Addr)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			return
		}
		serveErr <- nil
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Infof("received signal %v, shutting down...", sig)
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http serve failed: %w", err)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Warnf("http shutdown did not finish cleanly: %v", err)
		return err
	}
	log.Info("http server stopped gracefully")
	return nil
}
