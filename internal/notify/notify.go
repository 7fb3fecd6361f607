// Package notify sends email notifications when a new CV arrives.
package notify

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/types"
)

// sendFunc matches smtp.SendMail; replaced in tests.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Notifier sends admin notifications over SMTP. A zero-configured notifier
// silently skips sending so intake never fails on mail problems.
type Notifier struct {
	cfg  config.SMTPConfig
	send sendFunc
}

// New creates a Notifier from the SMTP configuration.
func New(cfg config.SMTPConfig) *Notifier {
	return &Notifier{cfg: cfg, send: smtp.SendMail}
}

// NotifyNewCV emails the admin that a CV was submitted. Failures are logged
// and returned, but callers are expected to treat them as non-fatal.
func (n *Notifier) NotifyNewCV(ctx context.Context, to string, cv *types.CV) error {
	if !n.cfg.Enabled() || to == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := "Nuevo CV recibido: " + cv.FullName
	body := fmt.Sprintf(
		"Se ha recibido un nuevo CV.\r\n\r\nNombre: %s\r\nEmail: %s\r\nTeléfono: %s\r\n",
		cv.FullName, cv.Email, cv.Phone,
	)
	msg := buildMessage(n.cfg.From, to, subject, body)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := n.send(n.cfg.Addr(), auth, n.cfg.From, []string{to}, msg); err != nil {
		log.Printf("[NOTIFY] failed to send new-CV email to %s: %v", to, err)
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}

// buildMessage assembles a minimal RFC 5322 message.
func buildMessage(from, to, subject, body string) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return []byte(sb.String())
}
