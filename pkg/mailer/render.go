package mailer

import (
	"github.com/autoplus/concesionaria/pkg/mailer/templates"
)

// Render expands a template job into a rendered message.
func Render(job EmailJob) (templates.Rendered, error) {
	return templates.Render(job.Template, job.Data)
}

// NewWelcomeJob builds the job enqueued after a successful registration.
func NewWelcomeJob(d templates.WelcomeData) EmailJob {
	return EmailJob{To: d.Email, Template: templates.Welcome, Data: d.ToMap()}
}
