// Package mailer delivers the daily report as plain-text email to a fixed
// recipient list.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"

	"rest-pos/config"
)

// Mailer sends reports over SMTP with STARTTLS and plain auth.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Configured reports whether enough settings exist to send anything.
func (m *Mailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.Username != "" && len(m.cfg.Recipients) > 0
}

// SendReport mails body to every configured recipient. Delivery stops at
// the first failing recipient so the error names it.
func (m *Mailer) SendReport(subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("smtp not configured")
	}
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	for _, rcpt := range m.cfg.Recipients {
		msg := m.message(rcpt, subject, body)
		if err := smtp.SendMail(addr, auth, m.cfg.Username, []string{rcpt}, msg); err != nil {
			return fmt.Errorf("send report to %s: %w", rcpt, err)
		}
	}
	return nil
}

func (m *Mailer) message(rcpt, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.Username)
	fmt.Fprintf(&b, "To: %s\r\n", rcpt)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@%s>\r\n", uuid.New(), m.cfg.Host)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
