package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// SMTPSender is the gomail-backed Provider.
type SMTPSender struct {
	config  Config
	dialer  *gomail.Dialer
	timeout time.Duration
}

func NewSMTPSender(config Config) (Provider, error) {
	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	timeout := time.Duration(config.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &SMTPSender{
		config:  config,
		dialer:  gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
		timeout: timeout,
	}, nil
}

func validate(c Config) error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTPPort)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

func (s *SMTPSender) SendResetCode(to, name, code string) error {
	body, err := renderResetCode(name, code)
	if err != nil {
		return fmt.Errorf("failed to render reset code email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromEmail, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your Heptabet password reset code")
	m.SetBody("text/html", body)

	return s.send(m)
}

// send bounds DialAndSend with a deadline; gomail has no timeout of its own
// and a stalled relay must not hang the HTTP request that triggered it.
func (s *SMTPSender) send(m *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(s.timeout):
		return fmt.Errorf("smtp send timed out after %s", s.timeout)
	}
}
