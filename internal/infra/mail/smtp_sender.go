// Package mail delivers transactional mail over SMTP with HTML bodies
// rendered from embedded templates.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"

	"arcade/config"
	"arcade/internal/domain/service"
	"arcade/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// smtpSender implements service.MailSender against a plain SMTP relay.
// Port 465 gets an implicit TLS connection; any other port is dialed in
// clear and upgraded with STARTTLS when the server offers it.
type smtpSender struct {
	host      string
	port      int
	username  string
	password  string
	from      string
	templates *template.Template
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mail templates")
	}

	return &smtpSender{
		host:      cfg.SMTP.Host,
		port:      cfg.SMTP.Port,
		username:  cfg.SMTP.UserName,
		password:  cfg.SMTP.Password,
		from:      cfg.SMTP.From,
		templates: tmpl,
	}, nil
}

// Send renders the named template with data and delivers it to a single recipient.
func (s *smtpSender) Send(ctx context.Context, to, subject, templateName string, data map[string]any) error {
	body, err := s.render(templateName, data)
	if err != nil {
		return err
	}

	msg := s.buildMessage(to, subject, body)

	done := make(chan error, 1)
	go func() {
		done <- s.deliver(to, msg)
	}()

	// net/smtp has no context support; bound the call ourselves.
	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "mail delivery cancelled")
	case err := <-done:
		return err
	}
}

func (s *smtpSender) render(templateName string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName+".html", data); err != nil {
		return "", errors.Wrapf(err, "failed to render mail template %q", templateName)
	}

	return buf.String(), nil
}

func (s *smtpSender) buildMessage(to, subject, body string) []byte {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	return msg.Bytes()
}

func (s *smtpSender) deliver(to string, msg []byte) error {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))

	if s.port == 465 {
		return s.deliverTLS(addr, to, msg)
	}

	client, err := smtp.Dial(addr)
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp server")
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return errors.Wrap(err, "starttls failed")
		}
	}

	return s.submit(client, to, msg)
}

func (s *smtpSender) deliverTLS(addr, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp server over tls")
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}
	defer client.Close()

	return s.submit(client, to, msg)
}

func (s *smtpSender) submit(client *smtp.Client, to string, msg []byte) error {
	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "smtp auth failed")
		}
	}

	if err := client.Mail(s.from); err != nil {
		return errors.Wrap(err, "smtp MAIL failed")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "smtp RCPT failed")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp DATA failed")
	}
	if _, err := w.Write(msg); err != nil {
		return errors.Wrap(err, "failed to write mail body")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to finish mail body")
	}

	return client.Quit()
}
