package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rest-pos/config"
)

func TestConfigured(t *testing.T) {
	m := New(config.SMTPConfig{})
	assert.False(t, m.Configured())

	m = New(config.SMTPConfig{
		Host:       "smtp.example.com",
		Username:   "pos@example.com",
		Recipients: []string{"owner@example.com"},
	})
	assert.True(t, m.Configured())
}

func TestMessageHeaders(t *testing.T) {
	m := New(config.SMTPConfig{Host: "smtp.example.com", Username: "pos@example.com"})

	msg := string(m.message("owner@example.com", "Daily Sales Report", "Total: 230.00\n"))

	assert.Contains(t, msg, "From: pos@example.com\r\n")
	assert.Contains(t, msg, "To: owner@example.com\r\n")
	assert.Contains(t, msg, "Subject: Daily Sales Report\r\n")
	assert.Contains(t, msg, "Message-ID: <")
	assert.Contains(t, msg, "@smtp.example.com>\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nTotal: 230.00\r\n"),
		"body must follow a blank line with CRLF endings: %q", msg)
}

func TestSendReportUnconfigured(t *testing.T) {
	err := New(config.SMTPConfig{}).SendReport("subject", "body")
	assert.Error(t, err)
}
