package app

import (
	"sync"

	"portfolio_backend/internal/email"
	"portfolio_backend/internal/logger"
)

// MockEmailProvider is used when no SMTP server is configured: messages are
// logged and kept in memory instead of being delivered.
type MockEmailProvider struct {
	renderer email.TemplateRenderer
	mu       sync.Mutex
	sent     []email.Email
}

func NewMockEmailProvider() *MockEmailProvider {
	return &MockEmailProvider{renderer: email.NewDefaultTemplateManager()}
}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	m.mu.Lock()
	m.sent = append(m.sent, *msg)
	m.mu.Unlock()

	logger.Info("Email not delivered (mock provider)", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) SendTemplate(to []string, subject string, templateName string, data email.TemplateData) error {
	htmlBody, err := m.renderer.Render(templateName, data)
	if err != nil {
		return err
	}
	return m.Send(&email.Email{To: to, Subject: subject, HTMLBody: htmlBody})
}

func (m *MockEmailProvider) Validate() error { return nil }
func (m *MockEmailProvider) Close() error    { return nil }

// Sent returns a copy of every message handed to the provider.
func (m *MockEmailProvider) Sent() []email.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]email.Email, len(m.sent))
	copy(out, m.sent)
	return out
}
