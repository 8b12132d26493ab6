// Package raster decodes image files into tightly packed 24-bit RGB
// buffers and resamples them with nearest-neighbor sampling.
package raster

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/AliceZed8/zfbv/internal/consts"
	"github.com/AliceZed8/zfbv/internal/errors"
)

// Channels is the fixed per-pixel channel count: 24-bit RGB, no alpha.
const Channels = 3

// Image is an uncompressed row-major RGB pixel buffer.
// Invariant: len(Pix) == Height*Stride, Stride == Width*Channels.
type Image struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// New allocates a zeroed image of the given dimensions.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Join(consts.ErrInvalidDimensions, errors.Errorf(`%dx%d`, width, height))
	}
	return &Image{
		Width:  width,
		Height: height,
		Stride: width * Channels,
		Pix:    make([]byte, height*width*Channels),
	}, nil
}

// Load decodes an image file into an RGB raster. The decoder is picked
// by the registered image formats (gif, jpeg, png plus the x/image
// formats imported above).
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(consts.ErrDecodeFailed, err)
	}
	defer f.Close()
	m, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Join(consts.ErrDecodeFailed, err)
	}
	return FromImage(m)
}

// FromImage converts a decoded image into a tightly packed RGB raster.
// Alpha is dropped.
func FromImage(m image.Image) (*Image, error) {
	if m == nil {
		return nil, errors.NilParam()
	}
	bounds := m.Bounds()
	img, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := m.At(x, y).RGBA()
			img.Pix[i] = byte(r >> 8)
			img.Pix[i+1] = byte(g >> 8)
			img.Pix[i+2] = byte(b >> 8)
			i += Channels
		}
	}
	return img, nil
}

// ResampleNearest produces a new independent image of the requested
// dimensions. Source coordinates are found by truncating integer
// division, channel triples are copied verbatim; the receiver is never
// modified.
func (img *Image) ResampleNearest(width, height int) (*Image, error) {
	if img == nil {
		return nil, errors.NilReceiver()
	}
	dst, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		srcRow := (y * img.Height / height) * img.Stride
		dstRow := y * dst.Stride
		for x := 0; x < width; x++ {
			srcIdx := srcRow + (x*img.Width/width)*Channels
			dstIdx := dstRow + x*Channels
			copy(dst.Pix[dstIdx:dstIdx+Channels], img.Pix[srcIdx:srcIdx+Channels])
		}
	}
	return dst, nil
}
