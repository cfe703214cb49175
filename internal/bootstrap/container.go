package bootstrap

import (
	"fmt"
	"net/http"
	"time"

	"noc-monitor/internal/config"
	"noc-monitor/internal/controller"
	datasource "noc-monitor/internal/datasource/contract"
	dsImpl "noc-monitor/internal/datasource/implementation"
	"noc-monitor/internal/pkg/logger"
	"noc-monitor/internal/pkg/mailer"
	"noc-monitor/internal/pkg/scheduler"
	"noc-monitor/internal/repository/contract"
	"noc-monitor/internal/repository/implementation"
	"noc-monitor/internal/service"
	"noc-monitor/pkg/database"

	"github.com/fatih/color"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	LogController     controller.ILogController
	MonitorController controller.IMonitorController

	// Use cases (exposed for main.go)
	MonitorService service.IMonitorService
	SendEmailLogs  service.ISendEmailLogs
	LogRepository  contract.LogRepository
}

func NewContainer(cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	// 1. Persistence
	logDataSource, logFiles, err := newLogDataSource(cfg.Storage)
	if err != nil {
		return nil, err
	}
	logRepository := implementation.NewLogRepository(logDataSource)

	// 2. Mailer
	emailService, err := mailer.NewEmailService(mailer.SMTPOptions{
		Service:    cfg.SMTP.Service,
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Email,
		Password:   cfg.SMTP.Password,
		SenderName: cfg.SMTP.SenderName,
	}, logFiles, sysLogger)
	if err != nil {
		return nil, err
	}

	// 3. Services
	client := &http.Client{Timeout: time.Duration(cfg.Monitor.TimeoutSeconds) * time.Second}
	checkService := service.NewCheckService(
		logRepository,
		client,
		sysLogger,
		func() { color.Green("✅ Service %s is reachable", cfg.Monitor.URL) },
		func(err string) { color.Red("❌ %s", err) },
	)
	monitorService := service.NewMonitorService(
		scheduler.NewCronService(sysLogger),
		checkService,
		cfg.Monitor.URL,
		cfg.Monitor.Schedule,
		sysLogger,
	)
	sendEmailLogs := service.NewSendEmailLogs(emailService, logRepository, sysLogger)
	logService := service.NewLogService(logRepository)

	// 4. Controllers
	return &Container{
		Logger:            sysLogger,
		LogController:     controller.NewLogController(logService, sendEmailLogs),
		MonitorController: controller.NewMonitorController(monitorService, checkService),
		MonitorService:    monitorService,
		SendEmailLogs:     sendEmailLogs,
		LogRepository:     logRepository,
	}, nil
}

// newLogDataSource also returns the files to attach to log reports; the
// postgres variant has none.
func newLogDataSource(cfg config.StorageConfig) (datasource.LogDataSource, []string, error) {
	switch cfg.Driver {
	case "file":
		ds, err := dsImpl.NewFileSystemDataSource(cfg.LogsDir)
		if err != nil {
			return nil, nil, err
		}
		return ds, ds.Files(), nil
	case "postgres":
		db, err := database.NewGormDBFromDSN(cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		ds, err := dsImpl.NewPostgresDataSource(db)
		if err != nil {
			return nil, nil, err
		}
		return ds, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown log datasource %q", cfg.Driver)
}
