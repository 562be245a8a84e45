package config

import "sort"

// Presets are named palettes. The terminal theme picks the chrome colors of
// the interactive app around the canvas.
var Presets = map[string]func() *Config{
	"light": DefaultConfig,
	"dark": func() *Config {
		cfg := DefaultConfig()
		cfg.Style = StyleConfig{
			Background: "#0a0a0a", Grid: "#1e1e1e", MajorGrid: "#3a3a3a", Axis: "#b4b4b4",
			Label: "#e0e0e0", LabelOutline: "#0a0a0a",
			GridWidth: 1, AxisWidth: 2, OutlineWidth: 6, TextSize: 12, ArrowLength: 20,
		}
		cfg.Terminal.Theme = "cyberpunk"
		return cfg
	},
	"blueprint": func() *Config {
		cfg := DefaultConfig()
		cfg.Style = StyleConfig{
			Background: "#0b3d91", Grid: "#2456a8", MajorGrid: "#4f7fc9", Axis: "#ffffff",
			Label: "#ffffff", LabelOutline: "#0b3d91",
			GridWidth: 1, AxisWidth: 2.5, OutlineWidth: 6, TextSize: 13, ArrowLength: 24,
		}
		cfg.Terminal.Theme = "ocean"
		return cfg
	},
	"paper": func() *Config {
		cfg := DefaultConfig()
		cfg.Interval = 40
		cfg.Style.Grid = "#e5e7eb"
		cfg.Style.MajorGrid = "#f87171"
		cfg.Style.GridWidth = 1
		cfg.Terminal.Theme = "sunset"
		return cfg
	},
	"phosphor": func() *Config {
		cfg := DefaultConfig()
		cfg.Style = StyleConfig{
			Background: "#001100", Grid: "#003300", MajorGrid: "#005500", Axis: "#00ff00",
			Label: "#88ff88", LabelOutline: "#001100",
			GridWidth: 1, AxisWidth: 2, OutlineWidth: 6, TextSize: 12, ArrowLength: 20,
		}
		cfg.Terminal.Theme = "retro"
		return cfg
	},
}

// GetPreset returns a fresh copy of a named preset, or nil.
func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := build()
	cfg.Preset = name
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
