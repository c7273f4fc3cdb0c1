package sheet

import (
	"image"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Stats holds the result of inspecting a decoded sheet
type Stats struct {
	Width       int
	Height      int
	Transparent int // pixels with alpha exactly zero
}

// Pixels returns the total number of pixels inspected
func (s Stats) Pixels() int {
	return s.Width * s.Height
}

// Ratio returns the fraction of fully transparent pixels
func (s Stats) Ratio() float64 {
	if s.Pixels() == 0 {
		return 0
	}
	return float64(s.Transparent) / float64(s.Pixels())
}

// Decode reads an image in any registered format from r and returns it as a
// non-premultiplied RGBA image with its top-left corner at (0, 0), along with
// the format name. Images without an alpha channel come back fully opaque.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	m, format, err := image.Decode(r)
	if err != nil {
		return nil, format, err
	}
	return toNRGBA(m), format, nil
}

func toNRGBA(m image.Image) *image.NRGBA {
	b := m.Bounds()
	if nm, ok := m.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return nm
	}

	// Adjust image so that top-left corner is at (0, 0)
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	return dst
}

// Analyze counts the fully transparent pixels in m
func Analyze(m *image.NRGBA) Stats {
	b := m.Bounds()
	s := Stats{
		Width:  b.Dx(),
		Height: b.Dy(),
	}
	for y := 0; y < s.Height; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+s.Width*4]
		for i := 3; i < len(row); i += 4 {
			if row[i] == 0 {
				s.Transparent++
			}
		}
	}
	return s
}
