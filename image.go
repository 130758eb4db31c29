package gridworld

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for LoadImage
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whitePixel is a 1x1 white image used to texture filled shapes.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(toRGBA(ColorWhite))
}

func toRGBA(c Color) color8 {
	return color8{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// color8 is an 8-bit RGBA color implementing color.Color.
type color8 struct {
	R, G, B, A uint8
}

func (c color8) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

// Image is a drawable raster. Actors own their Image exclusively; it is
// also the surface game code paints custom visuals onto. The Pen color is
// used by all drawing primitives.
type Image struct {
	img   *ebiten.Image
	alpha float64

	// Pen is the color used by the Draw* primitives.
	Pen Color
}

// NewImage returns a transparent image of the given pixel size.
func NewImage(width, height int) *Image {
	return &Image{img: ebiten.NewImage(width, height), alpha: 1, Pen: ColorBlack}
}

// NewImageFromImage wraps a decoded standard-library image.
func NewImageFromImage(src image.Image) *Image {
	return &Image{img: ebiten.NewImageFromImage(src), alpha: 1, Pen: ColorBlack}
}

// LoadImage loads an image (PNG or JPEG) through resource resolution: the
// configured image folder first, then the fallback resource set.
func (a *App) LoadImage(name string) (*Image, error) {
	r, err := a.openResource(name, "image")
	if err != nil {
		return nil, err
	}
	defer r.Close()
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", name, err)
	}
	return NewImageFromImage(src), nil
}

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.img.Bounds().Dx() }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.img.Bounds().Dy() }

// Alpha returns the image's opacity in [0, 1].
func (i *Image) Alpha() float64 { return i.alpha }

// SetAlpha sets the image's opacity, clamped to [0, 1]. Applied when the
// image is painted into a world, not to the pixels themselves.
func (i *Image) SetAlpha(a float64) { i.alpha = clamp01(a) }

// Fill floods the whole image with the given color.
func (i *Image) Fill(c Color) {
	i.img.Fill(toRGBA(c))
}

// Clear resets the image to fully transparent.
func (i *Image) Clear() {
	i.img.Clear()
}

// DrawImage blits other onto this image with its top-left at (x, y).
func (i *Image) DrawImage(other *Image, x, y int) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	i.img.DrawImage(other.img, &op)
}

// DrawLine draws a line in the pen color.
func (i *Image) DrawLine(x1, y1, x2, y2 int, width float32) {
	vector.StrokeLine(i.img,
		float32(x1), float32(y1), float32(x2), float32(y2),
		width, toRGBA(i.Pen), true)
}

// DrawRect draws a rectangle in the pen color, outlined or filled.
func (i *Image) DrawRect(x, y, width, height int, fill bool) {
	if fill {
		vector.DrawFilledRect(i.img,
			float32(x), float32(y), float32(width), float32(height),
			toRGBA(i.Pen), true)
		return
	}
	vector.StrokeRect(i.img,
		float32(x), float32(y), float32(width), float32(height),
		1, toRGBA(i.Pen), true)
}

// ovalPath builds an axis-aligned ellipse path inscribed in the given box,
// from four cubic Bezier quarters.
func ovalPath(x, y, width, height float64) *vector.Path {
	const kappa = 0.5522847498 // control distance for a circular quarter
	cx := x + width/2
	cy := y + height/2
	rx := width / 2
	ry := height / 2
	ox := rx * kappa
	oy := ry * kappa

	var p vector.Path
	p.MoveTo(float32(cx+rx), float32(cy))
	p.CubicTo(float32(cx+rx), float32(cy+oy), float32(cx+ox), float32(cy+ry), float32(cx), float32(cy+ry))
	p.CubicTo(float32(cx-ox), float32(cy+ry), float32(cx-rx), float32(cy+oy), float32(cx-rx), float32(cy))
	p.CubicTo(float32(cx-rx), float32(cy-oy), float32(cx-ox), float32(cy-ry), float32(cx), float32(cy-ry))
	p.CubicTo(float32(cx+ox), float32(cy-ry), float32(cx+rx), float32(cy-oy), float32(cx+rx), float32(cy))
	p.Close()
	return &p
}

// DrawOval draws an ellipse inscribed in the box (x, y, width, height) in
// the pen color, outlined or filled.
func (i *Image) DrawOval(x, y, width, height int, fill bool) {
	p := ovalPath(float64(x), float64(y), float64(width), float64(height))
	i.paintPath(p, fill)
}

// DrawPolygon draws a closed polygon in the pen color, outlined or filled.
// At least three points are required.
func (i *Image) DrawPolygon(points [][2]int, fill bool) error {
	if len(points) < 3 {
		return fmt.Errorf("gridworld: polygon needs at least 3 points, got %d", len(points))
	}
	var p vector.Path
	p.MoveTo(float32(points[0][0]), float32(points[0][1]))
	for _, pt := range points[1:] {
		p.LineTo(float32(pt[0]), float32(pt[1]))
	}
	p.Close()
	i.paintPath(&p, fill)
	return nil
}

// paintPath fills or strokes a path in the pen color.
func (i *Image) paintPath(p *vector.Path, fill bool) {
	var vs []ebiten.Vertex
	var is []uint16
	if fill {
		vs, is = p.AppendVerticesAndIndicesForFilling(nil, nil)
	} else {
		op := &vector.StrokeOptions{Width: 1}
		vs, is = p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	}
	c := i.Pen
	for j := range vs {
		vs[j].ColorR = float32(c.R)
		vs[j].ColorG = float32(c.G)
		vs[j].ColorB = float32(c.B)
		vs[j].ColorA = float32(c.A)
	}
	i.img.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawText renders text in the pen color with its top-left at (x, y). A nil
// font uses the default face.
func (i *Image) DrawText(s string, x, y int, font *Font) {
	if font == nil {
		font = DefaultFont()
	}
	t := font.Render(s, i.Pen)
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	i.img.DrawImage(t.surface(), &op)
}

// Scale resizes the image in place to the given pixel size with linear
// filtering.
func (i *Image) Scale(width, height int) {
	b := i.img.Bounds()
	dst := ebiten.NewImage(width, height)
	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	dst.DrawImage(i.img, &op)
	i.img = dst
}

// Mirror returns a flipped copy of the image.
func (i *Image) Mirror(horizontal, vertical bool) *Image {
	b := i.img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := ebiten.NewImage(w, h)
	var op ebiten.DrawImageOptions
	sx, sy := 1.0, 1.0
	var tx, ty float64
	if horizontal {
		sx, tx = -1, float64(w)
	}
	if vertical {
		sy, ty = -1, float64(h)
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(tx, ty)
	dst.DrawImage(i.img, &op)
	out := &Image{img: dst, alpha: i.alpha, Pen: i.Pen}
	return out
}

// Copy returns an independent copy of the image.
func (i *Image) Copy() *Image {
	b := i.img.Bounds()
	dst := ebiten.NewImage(b.Dx(), b.Dy())
	dst.DrawImage(i.img, nil)
	return &Image{img: dst, alpha: i.alpha, Pen: i.Pen}
}

// ColorAt reads the pixel at (x, y). This reads back from the GPU and is
// expensive in a per-frame loop.
func (i *Image) ColorAt(x, y int) (Color, error) {
	b := i.img.Bounds()
	if x < 0 || x >= b.Dx() || y < 0 || y >= b.Dy() {
		return Color{}, fmt.Errorf("gridworld: pixel (%d, %d) outside %dx%d image", x, y, b.Dx(), b.Dy())
	}
	r, g, bl, a := i.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(bl) / 0xffff,
		A: float64(a) / 0xffff,
	}, nil
}

// SetColorAt writes the pen color to the pixel at (x, y).
func (i *Image) SetColorAt(x, y int) {
	b := i.img.Bounds()
	i.img.Set(b.Min.X+x, b.Min.Y+y, toRGBA(i.Pen))
}

// surface exposes the backing ebiten image to the painter.
func (i *Image) surface() *ebiten.Image { return i.img }
