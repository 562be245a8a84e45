package store

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/config"
	"github.com/san-kum/cartgrid/internal/paint"
)

type ViewportData struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// CommandData is one draw command. Colors are hex strings and are omitted
// when the command does not paint them.
type CommandData struct {
	Op     string      `json:"op"`
	Layer  string      `json:"layer"`
	From   [2]float64  `json:"from"`
	To     *[2]float64 `json:"to,omitempty"`
	Color  string      `json:"color,omitempty"`
	Stroke string      `json:"stroke,omitempty"`
	Width  float64     `json:"width,omitempty"`
	Text   string      `json:"text,omitempty"`
	Size   float64     `json:"size,omitempty"`
}

type ExportData struct {
	Viewport ViewportData     `json:"viewport"`
	Interval float64          `json:"interval"`
	Counts   cartesian.Counts `json:"counts"`
	Stats    paint.Stats      `json:"stats"`
	Commands []CommandData    `json:"commands"`
}

func NewExportData(f *cartesian.Frame, cmds []paint.Command) ExportData {
	data := ExportData{
		Viewport: ViewportData{
			Width:   f.Viewport.Width,
			Height:  f.Viewport.Height,
			OffsetX: f.Viewport.Offset.X,
			OffsetY: f.Viewport.Offset.Y,
		},
		Interval: f.Interval,
		Counts:   f.Counts(),
		Stats:    paint.Count(cmds),
		Commands: make([]CommandData, len(cmds)),
	}

	for i, c := range cmds {
		cd := CommandData{
			Op:     c.Op.String(),
			Layer:  c.Layer.String(),
			From:   [2]float64{c.From.X, c.From.Y},
			Color:  hex(c.Color),
			Stroke: hex(c.Stroke),
			Width:  c.Width,
			Text:   c.Text,
			Size:   c.Size,
		}
		if c.Op == paint.OpLine {
			cd.To = &[2]float64{c.To.X, c.To.Y}
		}
		data.Commands[i] = cd
	}
	return data
}

func hex(c color.RGBA) string {
	if !paint.Visible(c) {
		return ""
	}
	return config.Hex(c)
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(file, data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func ExportJSONStdout(data ExportData) error {
	return WriteJSON(os.Stdout, data)
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ImportJSON(path string) (*ExportData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("store: %s: %w", path, err)
	}
	return &data, nil
}
