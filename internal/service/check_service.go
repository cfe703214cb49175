package service

import (
	"context"
	"fmt"
	"net/http"

	"noc-monitor/internal/entity"
	"noc-monitor/internal/pkg/logger"
	"noc-monitor/internal/repository/contract"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const checkServiceOrigin = "check_service"

type SuccessCallback func()
type ErrorCallback func(err string)

type ICheckService interface {
	Execute(ctx context.Context, url string) bool
}

type checkService struct {
	logRepository contract.LogRepository
	client        *http.Client
	logger        logger.ILogger
	onSuccess     SuccessCallback
	onError       ErrorCallback
}

// NewCheckService builds a URL check. Either callback may be nil. A nil client
// means http.DefaultClient, which has no timeout.
func NewCheckService(
	logRepository contract.LogRepository,
	client *http.Client,
	log logger.ILogger,
	onSuccess SuccessCallback,
	onError ErrorCallback,
) ICheckService {
	if client == nil {
		client = http.DefaultClient
	}
	return &checkService{
		logRepository: logRepository,
		client:        client,
		logger:        log,
		onSuccess:     onSuccess,
		onError:       onError,
	}
}

// Execute requests url once. It never returns an error: the outcome is the
// boolean plus one persisted log entry.
func (s *checkService) Execute(ctx context.Context, url string) bool {
	runID := uuid.NewString()
	ctx, span := otel.Tracer("noc-monitor/check").Start(ctx, "check.execute")
	span.SetAttributes(attribute.String("check.url", url), attribute.String("check.run_id", runID))
	defer span.End()

	if err := s.request(ctx, url); err != nil {
		span.SetStatus(codes.Error, err.Error())

		errorMessage := fmt.Sprintf("%s is not ok. %s", url, err)
		s.save(ctx, entity.NewLogEntry(entity.LogEntryOptions{
			Level:   entity.LogSeverityHigh,
			Message: errorMessage,
			Origin:  checkServiceOrigin,
		}))
		s.logger.Warn("CHECK", "Service check failed", map[string]interface{}{
			"url":    url,
			"run_id": runID,
			"error":  err.Error(),
		})

		if s.onError != nil {
			s.onError(errorMessage)
		}
		return false
	}

	s.save(ctx, entity.NewLogEntry(entity.LogEntryOptions{
		Level:   entity.LogSeverityLow,
		Message: fmt.Sprintf("Service %s working", url),
		Origin:  checkServiceOrigin,
	}))
	s.logger.Debug("CHECK", "Service check succeeded", map[string]interface{}{"url": url, "run_id": runID})

	if s.onSuccess != nil {
		s.onSuccess()
	}
	return true
}

func (s *checkService) request(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("error on check service %s: unexpected status %d", url, res.StatusCode)
	}
	return nil
}

// save outlives ctx so a cancelled check still records its outcome.
func (s *checkService) save(ctx context.Context, log *entity.LogEntry) {
	if err := s.logRepository.SaveLog(context.WithoutCancel(ctx), log); err != nil {
		s.logger.Error("CHECK", "Failed to persist check log", map[string]interface{}{
			"level": string(log.Level),
			"error": err.Error(),
		})
	}
}
