package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"noc-monitor/internal/bootstrap"
	"noc-monitor/internal/config"
	"noc-monitor/internal/pkg/logger"
	"noc-monitor/internal/server"
	"noc-monitor/internal/tracer"

	"github.com/fatih/color"
)

func main() {
	color.Cyan("🚀 Starting NOC monitor...")

	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.App)
	defer shutdownTracer(context.Background())

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, sysLogger)
	if err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}

	// 4. Start Background Services
	if err := container.MonitorService.Start(); err != nil {
		log.Fatalf("Failed to start monitor: %v", err)
	}

	if cfg.Monitor.SendReportOnStartup && len(cfg.Monitor.ReportRecipients) > 0 {
		go func() {
			if !container.SendEmailLogs.Execute(context.Background(), cfg.Monitor.ReportRecipients) {
				color.Red("❌ Failed to send startup logs report")
			}
		}()
	}

	// 5. Run Server until interrupted
	srv := server.New(cfg, container)
	go func() {
		if err := srv.Run(); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down...")
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	select {
	case <-container.MonitorService.Stop().Done():
	case <-time.After(30 * time.Second):
		log.Println("Timed out waiting for in-flight check")
	}
}
