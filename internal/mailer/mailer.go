package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"partyminder/internal/config"
)

// Mailer delivers a single plaintext message. Delivery is synchronous and
// never retried; callers decide whether a failure is fatal.
type Mailer interface {
	Send(to, from, replyTo, subject, body string) error
}

type SMTPMailer struct {
	addr string
	auth smtp.Auth
	host string
}

func NewSMTPMailer(cfg *config.SMTP) *SMTPMailer {
	m := &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		host: cfg.Host,
	}

	if cfg.User != "" {
		m.auth = smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	}

	return m
}

func (m *SMTPMailer) Send(to, from, replyTo, subject, body string) error {
	var msg strings.Builder

	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	if replyTo != "" {
		msg.WriteString("Reply-To: " + replyTo + "\r\n")
	}
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}

	return nil
}
