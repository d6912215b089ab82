package email

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"sync"
)

const ContactTemplate = "contact"

const contactTemplateHTML = `<h2>Nouveau message depuis votre portfolio</h2>
<p><strong>Portfolio :</strong> {{.Portfolio}}</p>
<p><strong>De :</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
<p><strong>Sujet :</strong> {{.Subject}}</p>
<hr>
<p>{{.Message}}</p>`

// TemplateManager keeps parsed html templates by name.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: make(map[string]*template.Template),
	}
}

// NewDefaultTemplateManager returns a manager with the built-in templates.
func NewDefaultTemplateManager() *TemplateManager {
	tm := NewTemplateManager()
	if err := tm.AddTemplate(ContactTemplate, contactTemplateHTML); err != nil {
		panic(err)
	}
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

func (tm *TemplateManager) TemplateNames() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.templates))
	for name := range tm.templates {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
