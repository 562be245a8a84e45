package export

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts caches Go Regular faces by size. Both export surfaces measure text
// with it, so SVG and PNG output lay labels out identically.
type Fonts struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

func NewFonts() (*Fonts, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: parse font: %w", err)
	}
	return &Fonts{font: fnt, faces: make(map[float64]font.Face)}, nil
}

// Face returns the cached face for size. Faces are not safe for concurrent
// use; MeasureText serializes its own access.
func (f *Fonts) Face(size float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face(size)
}

func (f *Fonts) face(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("export: face %v: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// MeasureText returns the advance width and the ascent plus descent.
func (f *Fonts) MeasureText(text string, size float64) (float64, float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(size)
	if err != nil {
		return 0, 0
	}
	m := face.Metrics()
	w := font.MeasureString(face, text)
	return fixedToFloat(w), fixedToFloat(m.Ascent + m.Descent)
}
