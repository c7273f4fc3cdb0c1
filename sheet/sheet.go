/*
Package sheet implements decoding and pixel inspection of sprite sheets.

A sheet is a single image holding a fixed number of equally sized animation
frames laid out left to right. The default layout is 1024 by 256 pixels split
into four 256 by 256 frames. A sheet is expected to carry real cut-out
transparency; at least 1% of its pixels must have an alpha value of exactly
zero, otherwise it is most likely a solid rectangular placeholder.

Percentages are always printed with two decimals. A sheet just under the
threshold can therefore fail while printing alpha0=1.00%; the comparison is
made on the exact ratio, not the rounded figure.
*/
package sheet

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	defaultWidth          = 1024
	defaultHeight         = 256
	defaultFrames         = 4
	defaultMinTransparent = 0.01
)

// ErrBadSpec is returned by Spec.Validate for a layout that cannot be met
var ErrBadSpec = errors.New("sheet: invalid spec")

// Spec describes the required geometry and content of a sheet
type Spec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Frames int `yaml:"frames"`

	// MinTransparent is the smallest accepted ratio of fully transparent
	// pixels, a ratio exactly equal to it passes
	MinTransparent float64 `yaml:"min_transparent"`
}

// Default returns the layout used by the toad sheets
func Default() Spec {
	return Spec{
		Width:          defaultWidth,
		Height:         defaultHeight,
		Frames:         defaultFrames,
		MinTransparent: defaultMinTransparent,
	}
}

// FrameWidth returns the width of a single frame
func (s Spec) FrameWidth() int {
	return s.Width / s.Frames
}

// FrameHeight returns the height of a single frame
func (s Spec) FrameHeight() int {
	return s.Height
}

// Pixels returns the total number of pixels in a conforming sheet
func (s Spec) Pixels() int {
	return s.Width * s.Height
}

// Validate checks the spec is self-consistent
func (s Spec) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return errors.Wrapf(ErrBadSpec, "size %dx%d", s.Width, s.Height)
	case s.Frames <= 0:
		return errors.Wrapf(ErrBadSpec, "%d frames", s.Frames)
	case s.Width%s.Frames != 0:
		return errors.Wrapf(ErrBadSpec, "width %d not divisible by %d frames", s.Width, s.Frames)
	case s.MinTransparent < 0 || s.MinTransparent > 1:
		return errors.Wrapf(ErrBadSpec, "transparency threshold %v outside [0, 1]", s.MinTransparent)
	}
	return nil
}

// FormatPercent renders a ratio as a percentage with two decimals, e.g. 0.0123
// becomes "1.23%"
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}
