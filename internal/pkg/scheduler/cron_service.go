package scheduler

import (
	"context"
	"fmt"

	"noc-monitor/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

const module = "SCHEDULER"

// Seconds are optional so both "*/5 * * * * *" and "*/1 * * * *" parse.
var parser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

type CronService struct {
	logger logger.ILogger
}

func NewCronService(log logger.ILogger) *CronService {
	return &CronService{logger: log}
}

// Job is a started recurring task.
type Job struct {
	cron     *cron.Cron
	entryID  cron.EntryID
	schedule string
	logger   logger.ILogger
}

// CreateJob registers onTick under expr and starts it immediately. A tick that
// fires while the previous one is still running is skipped.
func (s *CronService) CreateJob(expr string, onTick func()) (*Job, error) {
	cl := cronLogger{logger: s.logger}
	c := cron.New(
		cron.WithParser(parser),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	id, err := c.AddFunc(expr, onTick)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}

	c.Start()
	s.logger.Info(module, "Job started", map[string]interface{}{"schedule": expr})

	return &Job{cron: c, entryID: id, schedule: expr, logger: s.logger}, nil
}

// Stop prevents further ticks. The returned context is done once a running
// tick has finished.
func (j *Job) Stop() context.Context {
	ctx := j.cron.Stop()
	j.logger.Info(module, "Job stopped", map[string]interface{}{"schedule": j.schedule})
	return ctx
}

func (j *Job) Schedule() string {
	return j.schedule
}

// cronLogger routes robfig/cron's internal logging through the app logger.
type cronLogger struct {
	logger logger.ILogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(module, msg, toDetails(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	details := toDetails(keysAndValues)
	details["error"] = err.Error()
	l.logger.Error(module, msg, details)
}

func toDetails(keysAndValues []interface{}) map[string]interface{} {
	details := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		details[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return details
}
