package middleware

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/autoplus/concesionaria/internal/interface/console"
)

func TestStepLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	var seen *logrus.Entry
	h := StepLogger(logger)(func(c *console.Context) (console.State, error) {
		seen = c.Log
		return console.StateExited, nil
	})
	c, _ := newCtx(nil, console.StateUnauthenticated)
	if next, err := h(c); err != nil || next != console.StateExited {
		t.Fatalf("unexpected result %v, %v", next, err)
	}
	if seen == nil || seen.Data["step_id"] == "" {
		t.Fatalf("expected a step logger with step_id")
	}
	out := logs.String()
	if !strings.Contains(out, `"state":"unauthenticated"`) || !strings.Contains(out, `"next":"exited"`) {
		t.Fatalf("unexpected log output %q", out)
	}
}
