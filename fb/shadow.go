package fb

import (
	"image/color"

	"github.com/AliceZed8/zfbv/internal/consts"
	"github.com/AliceZed8/zfbv/internal/errors"
	"github.com/AliceZed8/zfbv/raster"
)

// shadow is the off-screen pixel buffer shared by Device and Memory.
// Invariant: len(pix) == width*height*bpp.
//
// The buffer uses the display's native channel order, which is the
// reverse of the raster order (BGR-first). With bpp == 4 only the first
// 3 bytes of each pixel cell are written, the 4th byte is left as is.
type shadow struct {
	width  int
	height int
	bpp    int
	pix    []byte
}

func newShadow(width, height, bpp int) *shadow {
	return &shadow{
		width:  width,
		height: height,
		bpp:    bpp,
		pix:    make([]byte, width*height*bpp),
	}
}

func (s *shadow) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

func (s *shadow) Height() int {
	if s == nil {
		return 0
	}
	return s.height
}

func (s *shadow) BytesPerPixel() int {
	if s == nil {
		return 0
	}
	return s.bpp
}

// Clear fills the shadow buffer with a solid color. The alpha component
// of c is ignored.
func (s *shadow) Clear(c color.RGBA) error {
	if s == nil {
		return errors.NilReceiver()
	}
	if s.bpp < raster.Channels {
		return errors.Join(consts.ErrUnsupportedDepth, errors.Errorf(`%d bpp`, s.bpp*8))
	}
	for i := 0; i < len(s.pix); i += s.bpp {
		s.pix[i] = c.B
		s.pix[i+1] = c.G
		s.pix[i+2] = c.R
	}
	return nil
}

// Blit copies img into the shadow buffer with its top-left corner at
// (xOffset, yOffset), clipped to the surface bounds on all four sides.
// Channel order is reversed per pixel on the way in.
func (s *shadow) Blit(xOffset, yOffset int, img *raster.Image) error {
	if s == nil {
		return errors.NilReceiver()
	}
	if img == nil {
		return errors.NilParam()
	}
	if s.bpp < raster.Channels {
		return errors.Join(consts.ErrUnsupportedDepth, errors.Errorf(`%d bpp`, s.bpp*8))
	}

	xStart := max(xOffset, 0)
	yStart := max(yOffset, 0)
	xEnd := min(xOffset+img.Width, s.width)
	yEnd := min(yOffset+img.Height, s.height)
	if xStart >= xEnd || yStart >= yEnd {
		// fully off-screen
		return nil
	}

	for y := yStart; y < yEnd; y++ {
		rowDst := y * s.width * s.bpp
		rowSrc := (y - yOffset) * img.Stride
		for x := xStart; x < xEnd; x++ {
			dst := rowDst + x*s.bpp
			src := rowSrc + (x-xOffset)*raster.Channels
			for c := 0; c < raster.Channels; c++ {
				s.pix[dst+c] = img.Pix[src+raster.Channels-1-c]
			}
		}
	}
	return nil
}
