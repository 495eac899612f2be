package storage

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/autoplus/concesionaria/config"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "database.sqlite")}
	h, err := Open(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer h.Close()
	if h.DB == nil || h.Pool != nil {
		t.Fatalf("expected only the sqlite handle, got %+v", h)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), &config.Config{DBDriver: "mysql"}, quietLogger()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestHandles_CloseNil(t *testing.T) {
	var h *Handles
	h.Close()
}
