package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/notmyrealname/apbuild/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newCaptured(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	l, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New did not return *logger.Logger")
	}
	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newCaptured(t)

	l.Info("stage env is up to date")

	out := buf.String()
	if !strings.Contains(out, "stage env is up to date") {
		t.Errorf("expected message in output, got: %q", out)
	}
	if !strings.Contains(out, "INF") {
		t.Errorf("expected info level marker, got: %q", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newCaptured(t)

	l.Warn("browser placement override")

	out := buf.String()
	if !strings.Contains(out, "browser placement override") {
		t.Errorf("expected message in output, got: %q", out)
	}
	if !strings.Contains(out, "WRN") {
		t.Errorf("expected warn level marker, got: %q", out)
	}
}

func TestLogger_Error(t *testing.T) {
	l, buf := newCaptured(t)

	l.Error(zerr.New("compiler not found"))

	out := buf.String()
	if !strings.Contains(out, "compiler not found") {
		t.Errorf("expected error message in output, got: %q", out)
	}
	if !strings.Contains(out, "ERR") {
		t.Errorf("expected error level marker, got: %q", out)
	}
}
