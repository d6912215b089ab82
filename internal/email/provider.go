package email

// Provider delivers outgoing mail.
type Provider interface {
	Send(email *Email) error

	// SendTemplate renders templateName with data as the HTML body.
	SendTemplate(to []string, subject string, templateName string, data TemplateData) error

	// Validate checks the provider configuration.
	Validate() error

	Close() error
}

// TemplateRenderer renders named mail templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
