// Package fb provides access to Linux framebuffer devices through an
// off-screen shadow buffer.
//
// Clear and Blit compose into the shadow buffer only; Flush copies the
// finished frame over the memory-mapped hardware region in one pass, so
// a frame is never visible half-drawn.
package fb

import (
	"image/color"

	"github.com/AliceZed8/zfbv/raster"
)

// Surface is a pixel sink that can be drawn on and presented.
// Device implements it over a real framebuffer, Memory over a plain
// byte slice.
type Surface interface {
	Width() int
	Height() int
	BytesPerPixel() int
	Clear(c color.RGBA) error
	Blit(x, y int, img *raster.Image) error
	Flush() error
	Close() error
}
