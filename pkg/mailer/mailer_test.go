package mailer

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/autoplus/concesionaria/pkg/mailer/templates"
)

type recordingSender struct {
	to, subject, text, html string
}

func (s *recordingSender) Send(_ context.Context, to, subject, text, html string) error {
	s.to, s.subject, s.text, s.html = to, subject, text, html
	return nil
}

func TestDeliver_WelcomeTemplate(t *testing.T) {
	job := NewWelcomeJob(templates.WelcomeData{
		Name:       "Ana <3",
		Email:      "ana@example.com",
		Dealership: "Concesionaria AutoPlus",
		Date:       "2026-10-16",
	})

	// jobs travel as JSON through the queue
	b, err := json.Marshal(job)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded EmailJob
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	s := &recordingSender{}
	if err := Deliver(context.Background(), s, decoded); err != nil {
		t.Fatalf("Deliver returned error: %v", err)
	}
	if s.to != "ana@example.com" {
		t.Fatalf("unexpected recipient %q", s.to)
	}
	if s.subject != "Bienvenido/a a Concesionaria AutoPlus" {
		t.Fatalf("unexpected subject %q", s.subject)
	}
	if !strings.Contains(s.text, "¡Hola Ana <3!") || !strings.Contains(s.text, "2026-10-16") {
		t.Fatalf("unexpected text body %q", s.text)
	}
	if !strings.Contains(s.html, "Ana &lt;3") {
		t.Fatalf("expected escaped html body, got %q", s.html)
	}
}

func TestDeliver_PlainJob(t *testing.T) {
	s := &recordingSender{}
	job := EmailJob{To: "bob@example.com", Subject: "Hola", Text: "texto"}
	if err := Deliver(context.Background(), s, job); err != nil {
		t.Fatalf("Deliver returned error: %v", err)
	}
	if s.subject != "Hola" || s.text != "texto" || s.html != "" {
		t.Fatalf("unexpected message: %+v", s)
	}
}

func TestDeliver_UnknownTemplate(t *testing.T) {
	if err := Deliver(context.Background(), &recordingSender{}, EmailJob{To: "x@example.com", Template: "nope"}); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}
