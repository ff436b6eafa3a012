package shapes_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-theft-auto/shapes"
)

func TestSetLogger(t *testing.T) {
	defer shapes.SetLogger(nil)

	var buf bytes.Buffer
	shapes.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// Growing a stream buffer is the package's one routine diagnostic.
	store := &mockStore{}
	b := shapes.NewStreamBuffer(store, 16)
	b.GrowToFit(100)

	if !strings.Contains(buf.String(), "stream buffer grown") {
		t.Errorf("expected growth diagnostic, got %q", buf.String())
	}

	// Nil restores the silent default.
	shapes.SetLogger(nil)
	if shapes.Logger() == nil {
		t.Fatal("Logger must never return nil")
	}
	buf.Reset()
	shapes.NewStreamBuffer(&mockStore{}, 16).GrowToFit(100)
	if buf.Len() != 0 {
		t.Errorf("silent default still wrote: %q", buf.String())
	}
}
