package service

import (
	"context"
	"errors"
	"sync"

	"noc-monitor/internal/pkg/logger"
	"noc-monitor/internal/pkg/scheduler"
)

type IMonitorService interface {
	Start() error
	Stop() context.Context
	RunOnce(ctx context.Context) bool
	URL() string
}

type monitorService struct {
	cronService  *scheduler.CronService
	checkService ICheckService
	url          string
	schedule     string
	logger       logger.ILogger

	mu  sync.Mutex
	job *scheduler.Job
}

func NewMonitorService(cronService *scheduler.CronService, checkService ICheckService, url, schedule string, log logger.ILogger) IMonitorService {
	return &monitorService{
		cronService:  cronService,
		checkService: checkService,
		url:          url,
		schedule:     schedule,
		logger:       log,
	}
}

func (s *monitorService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job != nil {
		return errors.New("monitor already started")
	}

	job, err := s.cronService.CreateJob(s.schedule, func() {
		s.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}
	s.job = job

	s.logger.Info("MONITOR", "Monitoring started", map[string]interface{}{
		"url":      s.url,
		"schedule": s.schedule,
	})
	return nil
}

// Stop halts the schedule. The returned context is done when an in-flight
// check has completed.
func (s *monitorService) Stop() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	ctx := s.job.Stop()
	s.job = nil
	return ctx
}

func (s *monitorService) RunOnce(ctx context.Context) bool {
	return s.checkService.Execute(ctx, s.url)
}

func (s *monitorService) URL() string {
	return s.url
}
