package mailer

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"noc-monitor/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type sentMessage struct {
	from string
	to   []string
	raw  string
}

func capturingSender(out *[]sentMessage) gomail.SendFunc {
	return func(from string, to []string, msg io.WriterTo) error {
		var buf bytes.Buffer
		if _, err := msg.WriteTo(&buf); err != nil {
			return err
		}
		*out = append(*out, sentMessage{from: from, to: to, raw: buf.String()})
		return nil
	}
}

func writeLogFiles(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"logs-low.log", "logs-high.log", "logs-medium.log"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("{}\n"), 0o644))
		paths = append(paths, p)
	}
	return paths
}

func TestSendEmailWithFileSystemLogs(t *testing.T) {
	var sent []sentMessage
	files := writeLogFiles(t)
	svc := newEmailServiceWithSender(capturingSender(&sent), "noc@example.com", "NOC Monitor", files, logger.NewNopLogger())

	err := svc.SendEmailWithFileSystemLogs([]string{"ops@example.com", "oncall@example.com"})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	msg := sent[0]
	assert.Equal(t, "noc@example.com", msg.from)
	assert.Equal(t, []string{"ops@example.com", "oncall@example.com"}, msg.to)
	assert.Contains(t, msg.raw, "Subject: Server logs")
	for _, name := range []string{"logs-low.log", "logs-high.log", "logs-medium.log"} {
		assert.Contains(t, msg.raw, `filename="`+name+`"`)
	}
}

func TestSendEmailMissingAttachment(t *testing.T) {
	var sent []sentMessage
	svc := newEmailServiceWithSender(capturingSender(&sent), "noc@example.com", "NOC", []string{"/does/not/exist.log"}, logger.NewNopLogger())

	err := svc.SendEmailWithFileSystemLogs([]string{"ops@example.com"})
	assert.Error(t, err)
	assert.Empty(t, sent)
}

func TestSendEmailSenderError(t *testing.T) {
	failing := gomail.SendFunc(func(string, []string, io.WriterTo) error {
		return errors.New("535 authentication failed")
	})
	svc := newEmailServiceWithSender(failing, "noc@example.com", "NOC", nil, logger.NewNopLogger())

	err := svc.SendEmail(SendEmailOptions{To: []string{"ops@example.com"}, Subject: "s", Text: "t"})
	assert.ErrorContains(t, err, "authentication failed")
}

func TestSendEmailRequiresRecipients(t *testing.T) {
	var sent []sentMessage
	svc := newEmailServiceWithSender(capturingSender(&sent), "noc@example.com", "NOC", nil, logger.NewNopLogger())

	assert.Error(t, svc.SendEmail(SendEmailOptions{Subject: "s"}))
	assert.Empty(t, sent)
}

func TestNewEmailServiceResolvesKnownService(t *testing.T) {
	_, err := NewEmailService(SMTPOptions{Service: "Gmail", Username: "a@b.c"}, nil, logger.NewNopLogger())
	assert.NoError(t, err)

	_, err = NewEmailService(SMTPOptions{Host: "mail.internal", Port: 25}, nil, logger.NewNopLogger())
	assert.NoError(t, err)

	_, err = NewEmailService(SMTPOptions{Service: "carrier-pigeon"}, nil, logger.NewNopLogger())
	assert.Error(t, err)
}
