// Package mail renders and delivers outgoing email.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"allergo/config"
	"allergo/internal/domain/service"

	"github.com/pkg/errors"
)

const dialTimeout = 10 * time.Second

type smtpMailer struct {
	addr   string
	host   string
	secure bool
	from   string
	auth   smtp.Auth
}

// NewSMTPMailer builds a Mailer from the smtp config section. Secure selects
// implicit TLS (port 465); otherwise STARTTLS is used when the server offers it.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host must be provided")
	}
	if cfg.SMTP.From == "" {
		return nil, errors.New("smtp from address must be provided")
	}

	m := &smtpMailer{
		addr:   net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port)),
		host:   cfg.SMTP.Host,
		secure: cfg.SMTP.Secure,
		from:   cfg.SMTP.From,
	}
	if cfg.SMTP.User != "" {
		m.auth = smtp.PlainAuth("", cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return m, nil
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := buildMessage(m.from, to, subject, htmlBody, time.Now())

	if !m.secure {
		return errors.Wrap(smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg), "smtp send")
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: dialTimeout},
		Config:    &tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12},
	}
	conn, err := dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return errors.Wrap(err, "smtp dial")
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()

		return errors.Wrap(err, "smtp handshake")
	}
	defer client.Close()

	if m.auth != nil {
		if err := client.Auth(m.auth); err != nil {
			return errors.Wrap(err, "smtp auth")
		}
	}
	if err := client.Mail(m.from); err != nil {
		return errors.Wrap(err, "smtp mail from")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "smtp rcpt to")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp data")
	}
	if _, err := w.Write(msg); err != nil {
		return errors.Wrap(err, "smtp write")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "smtp close data")
	}

	return errors.Wrap(client.Quit(), "smtp quit")
}

func buildMessage(from, to, subject, htmlBody string, now time.Time) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", now.Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)

	return buf.Bytes()
}
