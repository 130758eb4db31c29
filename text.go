package gridworld

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFontSize matches the size the overlay text has always used.
const defaultFontSize = 26

// Font is a TrueType face at a fixed size, rendered through Ebitengine's
// text/v2.
type Font struct {
	face *text.GoTextFace
}

// NewFontFromTTF parses TTF/OTF data and returns a font at the given size.
func NewFontFromTTF(ttf []byte, size float64) (*Font, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{face: &text.GoTextFace{Source: src, Size: size}}, nil
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
)

// DefaultFont returns the bundled default face (Go Regular) at the default
// size, shared by overlay texts and DrawText calls without a font.
func DefaultFont() *Font {
	defaultFontOnce.Do(func() {
		f, err := NewFontFromTTF(goregular.TTF, defaultFontSize)
		if err != nil {
			// The bundled font is a compile-time asset; failing to parse
			// it is unrecoverable.
			panic(fmt.Sprintf("gridworld: bundled font: %v", err))
		}
		defaultFont = f
	})
	return defaultFont
}

// Size returns the font size in points.
func (f *Font) Size() float64 { return f.face.Size }

// LineHeight returns the height of a single text line in pixels.
func (f *Font) LineHeight() float64 {
	m := f.face.Metrics()
	return m.HAscent + m.HDescent
}

// Measure returns the pixel dimensions of s rendered in this font.
func (f *Font) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.LineHeight())
}

// Render rasterizes s in the given color and returns it as a Text ready to
// blit.
func (f *Font) Render(s string, c Color) *Text {
	w, h := f.Measure(s)
	iw := int(math.Ceil(w))
	ih := int(math.Ceil(h))
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}
	img := ebiten.NewImage(iw, ih)
	op := &text.DrawOptions{}
	op.LineSpacing = f.LineHeight()
	op.ColorScale.ScaleWithColor(toRGBA(c))
	text.Draw(img, s, f.face, op)
	return &Text{str: s, img: img}
}

// Text is a rendered string, pinned to a cell by World.ShowText or blitted
// by Image.DrawText.
type Text struct {
	str string
	img *ebiten.Image
}

// String returns the text content.
func (t *Text) String() string { return t.str }

// Width returns the rendered width in pixels.
func (t *Text) Width() int { return t.img.Bounds().Dx() }

// Height returns the rendered height in pixels.
func (t *Text) Height() int { return t.img.Bounds().Dy() }

func (t *Text) surface() *ebiten.Image { return t.img }
