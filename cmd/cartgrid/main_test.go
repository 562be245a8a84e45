package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/cartgrid/internal/paint"
	"github.com/san-kum/cartgrid/internal/store"
)

func withRenderFlags(t *testing.T, f, out string) {
	t.Helper()
	oldFormat, oldOut := format, outPath
	format, outPath = f, out
	t.Cleanup(func() { format, outPath = oldFormat, oldOut })
}

func TestRenderUnknownFormatLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bmp")
	withRenderFlags(t, "bmp", path)

	if err := renderFrame(&cobra.Command{}, nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no output file, stat returned %v", err)
	}
}

func TestRenderTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.txt")

	cmds, err := renderTo(path, func(w io.Writer) ([]paint.Command, error) {
		_, err := io.WriteString(w, "grid\n")
		return []paint.Command{{Op: paint.OpLine}}, err
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(cmds) != 1 {
		t.Errorf("expected 1 command, got %d", len(cmds))
	}
	raw, err := os.ReadFile(path)
	if err != nil || string(raw) != "grid\n" {
		t.Errorf("unexpected file content %q (%v)", raw, err)
	}

	boom := errors.New("boom")
	if _, err := renderTo(path, func(io.Writer) ([]paint.Command, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("expected render error, got %v", err)
	}
}

func TestRenderJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.json")
	withRenderFlags(t, "json", path)

	if err := renderFrame(&cobra.Command{}, nil); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := store.ImportJSON(path)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if data.Viewport.Width != 1280 || data.Viewport.Height != 720 {
		t.Errorf("unexpected viewport %+v", data.Viewport)
	}
	if len(data.Commands) == 0 || data.Counts.Axes != 2 {
		t.Errorf("expected a full frame, got %d commands, counts %+v", len(data.Commands), data.Counts)
	}
	if err := inspectDump(&cobra.Command{}, []string{path}); err != nil {
		t.Errorf("inspect failed: %v", err)
	}
}
