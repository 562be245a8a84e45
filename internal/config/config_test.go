package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interval != 50 {
		t.Errorf("expected interval 50, got %f", cfg.Interval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	st := cfg.PaintStyle()
	if st.Background != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected white background, got %v", st.Background)
	}
	if st.AxisWidth != 2.2 || st.OutlineWidth != 8 {
		t.Errorf("unexpected stroke widths %f/%f", st.AxisWidth, st.OutlineWidth)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dark")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Style.Background != "#0a0a0a" {
		t.Errorf("expected dark background, got %s", cfg.Style.Background)
	}

	// presets hand out copies
	cfg.Style.Background = "#123456"
	if GetPreset("dark").Style.Background != "#0a0a0a" {
		t.Error("preset was mutated through a returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
preset: blueprint
interval: 25
style:
  axis: "#ff0000"
terminal:
  pan_step: 32
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Interval != 25 {
		t.Errorf("expected interval 25, got %f", cfg.Interval)
	}
	if cfg.Style.Axis != "#ff0000" {
		t.Errorf("expected axis override, got %s", cfg.Style.Axis)
	}
	if cfg.Style.Background != "#0b3d91" {
		t.Errorf("expected blueprint background, got %s", cfg.Style.Background)
	}
	if cfg.Terminal.PanStep != 32 || cfg.Terminal.CellWidth != DefaultCellWidth {
		t.Errorf("unexpected terminal section %+v", cfg.Terminal)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero interval", "interval: 0"},
		{"negative interval", "interval: -5"},
		{"infinite interval", "interval: .inf"},
		{"nan interval", "interval: .nan"},
		{"infinite terminal interval", "terminal:\n  interval: .inf"},
		{"infinite text size", "style:\n  text_size: .inf"},
		{"bad color", "style:\n  grid: \"#zzzzzz\""},
		{"unknown preset", "preset: neon"},
		{"zero text size", "style:\n  text_size: 0"},
		{"zero cell", "terminal:\n  cell_width: 0"},
	}

	for _, tt := range tests {
		if _, err := Parse([]byte(tt.data)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
	}

	if _, err := Parse([]byte("interval: [")); err == nil {
		t.Error("expected yaml syntax error")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cartgrid.yaml")
	cfg := GetPreset("paper")
	cfg.Viewport.Width = 333

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Viewport.Width != 333 || loaded.Interval != 40 || loaded.Style.MajorGrid != "#f87171" {
		t.Errorf("round trip lost values: %+v", loaded)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}, true},
		{"#1f2937", color.RGBA{0x1f, 0x29, 0x37, 255}, true},
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"none", color.RGBA{}, true},
		{"", color.RGBA{}, true},
		{"White", color.RGBA{255, 255, 255, 255}, true},
		{"slategray", color.RGBA{0x70, 0x80, 0x90, 255}, true},
		{"notacolor", color.RGBA{}, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}

	if got := Hex(color.RGBA{0x1f, 0x29, 0x37, 255}); got != "#1f2937" {
		t.Errorf("expected #1f2937, got %s", got)
	}
	if got := Hex(color.RGBA{}); got != "none" {
		t.Errorf("expected none, got %s", got)
	}
}

func TestWatchReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cartgrid.yaml")
	if err := os.WriteFile(path, []byte("interval: 50\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("interval: 33\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Reloads:
		if r.Err != nil {
			t.Fatalf("reload failed: %v", r.Err)
		}
		if r.Config.Interval != 33 {
			t.Errorf("expected interval 33, got %f", r.Config.Interval)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}
