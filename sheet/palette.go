package sheet

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/ericpauley/go-quantize/quantize"
)

// Palette summarises the visible colors of a sheet
type Palette struct {
	Unique   int           // distinct colors among pixels that are not fully transparent
	Dominant color.Palette // at most the requested number of representative colors
}

// Flat reports whether every visible pixel shares one color, which usually
// means the sheet is a placeholder rather than drawn art
func (p Palette) Flat() bool {
	return p.Unique == 1
}

// Hex returns the dominant colors as #rrggbb strings
func (p Palette) Hex() []string {
	s := make([]string, 0, len(p.Dominant))
	for _, c := range p.Dominant {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		s = append(s, fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B))
	}
	return s
}

func countColors(m *image.NRGBA) map[color.NRGBA]int {
	colors := make(map[color.NRGBA]int)
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			colors[c]++
		}
	}
	return colors
}

type colorCount struct {
	c color.NRGBA
	n int
}

// Most frequent first, ties broken on the packed value so the order is stable
func byFrequency(h map[color.NRGBA]int) []colorCount {
	s := make([]colorCount, 0, len(h))
	for c, n := range h {
		s = append(s, colorCount{c, n})
	}
	sort.Slice(s, func(i, j int) bool {
		if s[i].n != s[j].n {
			return s[i].n > s[j].n
		}
		return packed(s[i].c) < packed(s[j].c)
	})
	return s
}

func packed(c color.NRGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Summarize counts the visible colors in m and picks up to n dominant ones.
// When there are more than n colors they are reduced with a median cut.
func Summarize(m *image.NRGBA, n int) Palette {
	h := countColors(m)
	p := Palette{Unique: len(h)}
	if n <= 0 || len(h) == 0 {
		return p
	}

	if len(h) <= n {
		for _, cc := range byFrequency(h) {
			p.Dominant = append(p.Dominant, cc.c)
		}
		return p
	}

	// Fully transparent pixels carry no weight so they never become a bucket
	q := quantize.MedianCutQuantizer{
		Weighting: func(_ image.Image, x, y int) uint32 {
			if m.NRGBAAt(x, y).A == 0 {
				return 0
			}
			return 1
		},
	}
	p.Dominant = q.Quantize(make(color.Palette, 0, n), m)
	return p
}
