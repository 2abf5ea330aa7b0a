package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Satisfaction108/Burrs-io-sub000/config"
	"github.com/Satisfaction108/Burrs-io-sub000/network"
	"github.com/Satisfaction108/Burrs-io-sub000/room"
)

func main() {
	config.InitConfig()
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "listen address")
	tuningFile := flag.String("tuning", cfg.TuningFile, "TOML file overriding game tuning")
	flag.Parse()

	tuning, err := config.LoadTuning(*tuningFile)
	if err != nil {
		log.Fatalf("burrs-server: %v", err)
	}

	rooms := room.NewManager(tuning)
	mux := http.NewServeMux()
	network.NewServer(rooms, cfg.DefaultRoom, cfg.AllowedOrigins).Routes(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("burrs-server: listening on %s (%.0fx%.0f map, %d Hz)", *addr, tuning.MapWidth, tuning.MapHeight, tuning.TickHz)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("burrs-server: listen failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("burrs-server: shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("burrs-server: shutdown: %v", err)
	}
	rooms.Shutdown()
}
