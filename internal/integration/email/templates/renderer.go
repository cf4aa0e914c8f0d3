// Package templates renders the e-mails sent by the service.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

const budgetAlertTemplate = "budget_alert"

// Rendered holds both bodies of a message.
type Rendered struct {
	HTML string
	Text string
}

// BudgetAlertData feeds the budget_alert templates.
type BudgetAlertData struct {
	UserName  string
	Title     string
	Category  string
	Message   string
	Exceeded  bool
	ActionURL string
}

// Renderer executes the embedded templates. Every message has an HTML and a text part.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates once.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

// BudgetAlert renders a warning or exceeded alert.
func (r *Renderer) BudgetAlert(data BudgetAlertData) (Rendered, error) {
	return r.render(budgetAlertTemplate, data)
}

func (r *Renderer) render(name string, data any) (Rendered, error) {
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return Rendered{}, fmt.Errorf("failed to render %s.html: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return Rendered{}, fmt.Errorf("failed to render %s.txt: %w", name, err)
	}
	return Rendered{HTML: html.String(), Text: text.String()}, nil
}
