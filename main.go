package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"SystemMonitor/pkg/collecting"
	"SystemMonitor/pkg/config"
	"SystemMonitor/pkg/logging"
	"SystemMonitor/pkg/rendering"
	"SystemMonitor/pkg/ticking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)
	session := uuid.NewString()

	manager := collecting.NewManager(cfg.ProcRoot, log)
	// Prime the CPU generation so the first rendered tick has a real delta.
	manager.RefreshAll()

	ticker, err := ticking.New(time.Second)
	if err != nil {
		log.Error("cannot create tick timer", "err", err)
		os.Exit(1)
	}
	defer ticker.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down", "session", session)
		os.Exit(0)
	}()

	fmt.Println("System monitor started, press Ctrl+C to exit...")
	log.Info("monitor started", "session", session)

	for {
		if _, err := ticker.Wait(); err != nil {
			log.Error("tick wait failed", "err", err)
			return
		}

		rendering.ClearScreen(os.Stdout)
		rendering.Header(os.Stdout, session)
		manager.RefreshAll()
		manager.RenderAll(os.Stdout)
		rendering.Footer(os.Stdout)
	}
}
