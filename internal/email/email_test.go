package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_RendersContactEscaped(t *testing.T) {
	tm := NewDefaultTemplateManager()

	out, err := tm.Render(ContactTemplate, TemplateData{
		"Portfolio": "dev-web",
		"Name":      "Alice",
		"Email":     "alice@example.com",
		"Subject":   "Hello",
		"Message":   "<script>x</script>",
	})

	require.NoError(t, err)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "dev-web")
	assert.NotContains(t, out, "<script>")
	assert.Equal(t, []string{ContactTemplate}, tm.TemplateNames())
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	_, err := NewTemplateManager().Render("missing", nil)

	assert.Error(t, err)
}

func TestSMTPProvider_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SMTPConfig
		wantErr bool
	}{
		{"complete", SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "me@example.com"}, false},
		{"no host", SMTPConfig{Port: 587, FromEmail: "me@example.com"}, true},
		{"bad port", SMTPConfig{Host: "smtp.example.com", FromEmail: "me@example.com"}, true},
		{"no sender", SMTPConfig{Host: "smtp.example.com", Port: 587}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := NewSMTPProvider(&cfg, nil).Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSMTPConfig(t *testing.T) {
	cfg := NewSMTPConfig("smtp.example.com", 0)
	assert.Equal(t, SubmissionPort, cfg.Port)
	assert.True(t, cfg.UseTLS)
	assert.False(t, NewSMTPProvider(cfg, nil).dialer.SSL)

	smtps := NewSMTPConfig("smtp.example.com", ImplicitTLSPort)
	assert.True(t, NewSMTPProvider(smtps, nil).dialer.SSL)

	assert.EqualError(t, cfg.Validate(), "from email is not configured")
	cfg.FromEmail = "portfolio@example.com"
	assert.NoError(t, cfg.Validate())
}

func TestSMTPProvider_SendWithoutRecipients(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "me@example.com"}, nil)

	err := p.Send(&Email{Subject: "x"})

	assert.EqualError(t, err, "no recipients")
}

func TestSMTPProvider_SendTemplateNeedsRenderer(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "me@example.com"}, nil)

	err := p.SendTemplate([]string{"a@example.com"}, "s", ContactTemplate, nil)

	assert.Error(t, err)
}
