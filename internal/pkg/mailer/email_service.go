// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"noc-monitor/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

const (
	logsSubject = "Server logs"
	logsText    = "Attached are the server logs"
	logsHTML    = `
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>NOC Monitor</h2>
			<p>Attached are the server logs.</p>
		</div>
	`
)

type IEmailService interface {
	SendEmail(opts SendEmailOptions) error
	SendEmailWithFileSystemLogs(to []string) error
}

type Attachment struct {
	Filename string
	Path     string
}

type SendEmailOptions struct {
	To          []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

type smtpServer struct {
	host string
	port int
}

// knownServices resolves MAILER_SERVICE when no explicit SMTP host is configured.
var knownServices = map[string]smtpServer{
	"gmail":   {host: "smtp.gmail.com", port: 587},
	"outlook": {host: "smtp.office365.com", port: 587},
	"hotmail": {host: "smtp.office365.com", port: 587},
	"yahoo":   {host: "smtp.mail.yahoo.com", port: 465},
}

type SMTPOptions struct {
	Service    string
	Host       string
	Port       int
	Username   string
	Password   string
	SenderName string
}

type emailService struct {
	sender      gomail.Sender
	dial        func(m ...*gomail.Message) error
	senderEmail string
	senderName  string
	logFiles    []string
	logger      logger.ILogger
}

// NewEmailService sends through an SMTP dialer. logFiles are the paths attached
// by SendEmailWithFileSystemLogs.
func NewEmailService(opts SMTPOptions, logFiles []string, log logger.ILogger) (IEmailService, error) {
	host, port := opts.Host, opts.Port
	if host == "" {
		known, ok := knownServices[strings.ToLower(opts.Service)]
		if !ok {
			return nil, fmt.Errorf("unknown mailer service %q and no SMTP host configured", opts.Service)
		}
		host, port = known.host, known.port
	}

	d := gomail.NewDialer(host, port, opts.Username, opts.Password)

	return &emailService{
		dial:        d.DialAndSend,
		senderEmail: opts.Username,
		senderName:  opts.SenderName,
		logFiles:    logFiles,
		logger:      log,
	}, nil
}

// newEmailServiceWithSender uses an already open sender instead of dialing per message.
func newEmailServiceWithSender(sender gomail.Sender, senderEmail, senderName string, logFiles []string, log logger.ILogger) IEmailService {
	return &emailService{
		sender:      sender,
		senderEmail: senderEmail,
		senderName:  senderName,
		logFiles:    logFiles,
		logger:      log,
	}
}

func (s *emailService) SendEmail(opts SendEmailOptions) error {
	if len(opts.To) == 0 {
		return errors.New("no recipients")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", opts.To...)
	m.SetHeader("Subject", opts.Subject)
	m.SetBody("text/plain", opts.Text)
	if opts.HTML != "" {
		m.AddAlternative("text/html", opts.HTML)
	}
	for _, a := range opts.Attachments {
		m.Attach(a.Path, gomail.Rename(a.Filename))
	}

	details := map[string]interface{}{
		"to":          opts.To,
		"subject":     opts.Subject,
		"attachments": len(opts.Attachments),
	}

	if err := s.send(m); err != nil {
		details["error"] = err.Error()
		s.logger.Error("MAILER", "Failed to send email", details)
		return err
	}

	s.logger.Info("MAILER", "Email sent", details)
	return nil
}

func (s *emailService) SendEmailWithFileSystemLogs(to []string) error {
	if len(s.logFiles) == 0 {
		s.logger.Warn("MAILER", "No log files configured, sending report without attachments", nil)
	}

	attachments := make([]Attachment, 0, len(s.logFiles))
	for _, path := range s.logFiles {
		attachments = append(attachments, Attachment{Filename: filepath.Base(path), Path: path})
	}

	return s.SendEmail(SendEmailOptions{
		To:          to,
		Subject:     logsSubject,
		Text:        logsText,
		HTML:        logsHTML,
		Attachments: attachments,
	})
}

func (s *emailService) send(m *gomail.Message) error {
	if s.sender != nil {
		return gomail.Send(s.sender, m)
	}
	return s.dial(m)
}
