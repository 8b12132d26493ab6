// Package viewer runs the interactive render loop: clear, blit
// centered, flush, wait for one keystroke, adjust the zoom.
package viewer

import (
	"image/color"
	"io"
	"log/slog"

	"github.com/AliceZed8/zfbv/fb"
	"github.com/AliceZed8/zfbv/internal/errors"
	"github.com/AliceZed8/zfbv/internal/log"
	"github.com/AliceZed8/zfbv/raster"
)

// KeyReader delivers one keystroke per call, blocking until input is
// available.
type KeyReader interface {
	ReadRune() (r rune, size int, err error)
}

// Resampler produces a scaled copy of src. The default is
// (*raster.Image).ResampleNearest.
type Resampler func(src *raster.Image, width, height int) (*raster.Image, error)

// Options configure a Viewer. The zero value selects the defaults.
type Options struct {
	Margin    float64 // fit-to-screen margin, DefaultMargin when 0
	Step      float64 // zoom factor per keypress, DefaultStep when 0
	Logger    *slog.Logger
	Resampler Resampler
}

// Viewer owns the scale-invariant source image and exactly one resized
// copy at a time; the copy is replaced, never mutated, on every scale
// change.
type Viewer struct {
	surf     fb.Surface
	src      *raster.Image
	keys     KeyReader
	margin   float64
	step     float64
	logger   *slog.Logger
	resample Resampler
}

func New(surf fb.Surface, src *raster.Image, keys KeyReader, opts *Options) (*Viewer, error) {
	if surf == nil || src == nil || keys == nil {
		return nil, errors.NilParam()
	}
	v := &Viewer{
		surf:     surf,
		src:      src,
		keys:     keys,
		margin:   DefaultMargin,
		step:     DefaultStep,
		resample: (*raster.Image).ResampleNearest,
	}
	if opts != nil {
		if opts.Margin > 0 {
			v.margin = opts.Margin
		}
		if opts.Step > 0 {
			v.step = opts.Step
		}
		if opts.Resampler != nil {
			v.resample = opts.Resampler
		}
		v.logger = opts.Logger
	}
	return v, nil
}

// Run fits the image, then loops: draw, read a key, adjust.
//
// Key semantics: r resets to the fit scale, + zooms in, - zooms out,
// q quits; anything else redraws. Zoom results are clamped to
// [MinScale, MaxScale]; when the clamped scale equals the previous one
// no resample happens. Resampling always starts from the original
// source so repeated zooming does not accumulate quality loss.
func (v *Viewer) Run() error {
	if v == nil {
		return errors.NilReceiver()
	}

	defaultScale := FitScale(v.surf.Width(), v.surf.Height(), v.src.Width, v.src.Height, v.margin)
	scale := defaultScale
	width, height := v.scaledSize(scale)
	resized, err := v.resample(v.src, width, height)
	if err != nil {
		return errors.New(err)
	}
	prevScale := scale

	for {
		v.draw(resized)

		r, _, err := v.keys.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.New(err)
		}

		switch r {
		case 'r':
			scale = defaultScale
		case '+':
			scale = ClampScale(scale * v.step)
		case '-':
			scale = ClampScale(scale / v.step)
		case 'q':
			return nil
		}

		if scale == prevScale {
			continue
		}
		prevScale = scale

		width, height := v.scaledSize(scale)
		newResized, err := v.resample(v.src, width, height)
		if log.IsErr(v.logger, slog.LevelError, err, `scale`, scale) {
			// keep showing the previous image
			continue
		}
		resized = newResized
	}
}

func (v *Viewer) scaledSize(scale float64) (width, height int) {
	return int(float64(v.src.Width) * scale), int(float64(v.src.Height) * scale)
}

func (v *Viewer) draw(img *raster.Image) {
	posX := (v.surf.Width() - img.Width) / 2
	posY := (v.surf.Height() - img.Height) / 2
	log.IsErr(v.logger, slog.LevelWarn, v.surf.Clear(color.RGBA{}))
	log.IsErr(v.logger, slog.LevelWarn, v.surf.Blit(posX, posY, img))
	log.IsErr(v.logger, slog.LevelWarn, v.surf.Flush())
}
