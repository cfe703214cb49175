package service

import (
	"context"
	"fmt"

	"noc-monitor/internal/entity"
	"noc-monitor/internal/pkg/logger"
	"noc-monitor/internal/pkg/mailer"
	"noc-monitor/internal/repository/contract"
)

const sendEmailLogsOrigin = "send_email_logs"

type ISendEmailLogs interface {
	Execute(ctx context.Context, to []string) bool
}

type sendEmailLogs struct {
	emailService  mailer.IEmailService
	logRepository contract.LogRepository
	logger        logger.ILogger
}

func NewSendEmailLogs(emailService mailer.IEmailService, logRepository contract.LogRepository, log logger.ILogger) ISendEmailLogs {
	return &sendEmailLogs{
		emailService:  emailService,
		logRepository: logRepository,
		logger:        log,
	}
}

// Execute mails the log files to the recipients. Success means the SMTP
// server accepted the message.
func (u *sendEmailLogs) Execute(ctx context.Context, to []string) bool {
	err := u.emailService.SendEmailWithFileSystemLogs(to)
	if err == nil {
		return true
	}

	log := entity.NewLogEntry(entity.LogEntryOptions{
		Level:   entity.LogSeverityHigh,
		Message: fmt.Sprintf("Failed to send logs email: %s", err),
		Origin:  sendEmailLogsOrigin,
	})
	if saveErr := u.logRepository.SaveLog(context.WithoutCancel(ctx), log); saveErr != nil {
		u.logger.Error("SEND_LOGS", "Failed to persist email failure log", map[string]interface{}{
			"error": saveErr.Error(),
		})
	}
	return false
}
