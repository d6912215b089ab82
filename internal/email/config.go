package email

import "fmt"

const (
	// SubmissionPort is used when the relay settings leave the port unset.
	SubmissionPort = 587
	// ImplicitTLSPort switches the dialer to SMTPS instead of STARTTLS.
	ImplicitTLSPort = 465
)

// SMTPConfig describes the relay contact messages are handed to. FromEmail is
// the envelope sender; the visitor's address only ever goes into Reply-To.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}

// NewSMTPConfig returns a STARTTLS config for host. A zero port means the
// submission port.
func NewSMTPConfig(host string, port int) *SMTPConfig {
	if port == 0 {
		port = SubmissionPort
	}
	return &SMTPConfig{
		Host:   host,
		Port:   port,
		UseTLS: true,
	}
}

func (c *SMTPConfig) implicitTLS() bool {
	return c.Port == ImplicitTLSPort
}

// Validate reports the first setting that prevents sending.
func (c *SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host is not configured")
	}
	if c.Port <= 0 {
		return fmt.Errorf("SMTP port is invalid: %d", c.Port)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is not configured")
	}
	return nil
}
