package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/config"
	"taskboard/internal/routes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.New()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db := initDB(cfg)
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	var origins []string
	if !cfg.AllowAllOrigins() {
		origins = cfg.CORSOrigins
	}
	engine := routes.Register(db, routes.Options{AllowOrigins: origins})

	srv := &http.Server{Addr: cfg.Addr, Handler: engine}
	go func() {
		log.Printf("listening on %s (%s)", cfg.Addr, cfg.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("shutdown complete")
}
