// Package templates renders the transactional emails of the dealership.
package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
)

const Welcome = "welcome"

// WelcomeData feeds the welcome template.
type WelcomeData struct {
	Name       string
	Email      string
	Dealership string
	Date       string
}

// ToMap converts WelcomeData to EmailJob.Data.
func (d WelcomeData) ToMap() map[string]any {
	return map[string]any{
		"Name":       d.Name,
		"Email":      d.Email,
		"Dealership": d.Dealership,
		"Date":       d.Date,
	}
}

const welcomeText = `¡Hola {{.Name}}!

Bienvenido/a a {{.Dealership}}. Tu cuenta ({{.Email}}) quedó registrada el {{.Date}}.
Ya podés iniciar sesión para ver nuestros vehículos.
`

const welcomeHTML = `<p>¡Hola <strong>{{.Name}}</strong>!</p>
<p>Bienvenido/a a {{.Dealership}}. Tu cuenta ({{.Email}}) quedó registrada el {{.Date}}.</p>
<p>Ya podés iniciar sesión para ver nuestros vehículos.</p>
`

var (
	welcomeTextTpl = texttpl.Must(texttpl.New("welcome.txt").Option("missingkey=zero").Parse(welcomeText))
	welcomeHTMLTpl = htmpl.Must(htmpl.New("welcome.html").Option("missingkey=zero").Parse(welcomeHTML))
)

// Rendered is a template expanded into a subject and bodies.
type Rendered struct {
	Subject string
	Text    string
	HTML    string
}

// Render expands the named template with data.
func Render(name string, data map[string]any) (Rendered, error) {
	switch name {
	case Welcome:
		var txt, html bytes.Buffer
		if err := welcomeTextTpl.Execute(&txt, data); err != nil {
			return Rendered{}, fmt.Errorf("render %s text: %w", name, err)
		}
		if err := welcomeHTMLTpl.Execute(&html, data); err != nil {
			return Rendered{}, fmt.Errorf("render %s html: %w", name, err)
		}
		dealership, _ := data["Dealership"].(string)
		return Rendered{
			Subject: "Bienvenido/a a " + dealership,
			Text:    txt.String(),
			HTML:    html.String(),
		}, nil
	default:
		return Rendered{}, fmt.Errorf("unknown template %q", name)
	}
}
