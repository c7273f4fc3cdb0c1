package spritelint

import (
	"fmt"
	"hash"
	"hash/crc32"
	"image"
	"io"
	"os"

	"github.com/bodgit/spritelint/sheet"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func checksum(h hash.Hash32) string {
	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil))
}

// Check decodes the sheet at file and runs every rule against it in order:
// size, frame divisibility, then transparency. Failing to open or decode the
// file is returned as an error rather than a Result.
func (v *Validator) Check(file string) (Result, error) {
	f, err := os.Open(file)
	if err != nil {
		return Result{}, errors.Wrapf(err, "spritelint: open %q", file)
	}
	defer f.Close()

	h := crc32.NewIEEE()
	m, format, err := sheet.Decode(io.TeeReader(f, h))
	if err != nil {
		return Result{}, errors.Wrapf(err, "spritelint: decode %q", file)
	}

	// Decoders may stop short of the end of the file
	if _, err = io.Copy(h, f); err != nil {
		return Result{}, errors.Wrapf(err, "spritelint: read %q", file)
	}

	r, stats := v.inspect(m)

	fields := []zap.Field{
		zap.String("file", file),
		zap.String("format", format),
		zap.String("crc", checksum(h)),
		zap.Stringer("status", r.Status),
	}
	if stats != nil {
		fields = append(fields, zap.Int("transparent", stats.Transparent), zap.Int("pixels", stats.Pixels()))
	}
	if v.logger.Core().Enabled(zap.DebugLevel) {
		p := sheet.Summarize(m, paletteSize)
		fields = append(fields, zap.Int("colors", p.Unique), zap.Strings("dominant", p.Hex()))
		if p.Flat() {
			v.logger.Debug("sheet has a single visible color", zap.String("file", file))
		}
	}
	v.logger.Debug("checked sheet", fields...)

	return r, nil
}

// inspect applies the rules to a decoded sheet. The size and divisibility rules
// are both evaluated before giving up; transparency is only measured on a sheet
// with the right geometry.
func (v *Validator) inspect(m *image.NRGBA) (Result, *sheet.Stats) {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	var reasons []string
	if w != v.spec.Width || h != v.spec.Height {
		reasons = append(reasons, fmt.Sprintf("wrong size %dx%d (expected %dx%d)", w, h, v.spec.Width, v.spec.Height))
	}
	if w%v.spec.Frames != 0 {
		reasons = append(reasons, fmt.Sprintf("width not divisible by %d: %dx%d", v.spec.Frames, w, h))
	}
	if len(reasons) > 0 {
		return failed(reasons...), nil
	}

	stats := sheet.Analyze(m)
	ratio := stats.Ratio()
	if ratio < v.spec.MinTransparent {
		return failed(fmt.Sprintf("no real transparency (alpha0=%s)", sheet.FormatPercent(ratio))), &stats
	}

	return ok(fmt.Sprintf("size=%dx%d alpha0=%s frame=%dx%d", w, h, sheet.FormatPercent(ratio), v.spec.FrameWidth(), v.spec.FrameHeight())), &stats
}
