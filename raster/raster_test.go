package raster_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliceZed8/zfbv/internal/consts"
	"github.com/AliceZed8/zfbv/internal/errors"
	"github.com/AliceZed8/zfbv/raster"
)

// gradientImage returns a w×h raster where every pixel has a unique
// channel triple.
func gradientImage(t *testing.T, w, h int) *raster.Image {
	t.Helper()
	img, err := raster.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*img.Stride + x*raster.Channels
			img.Pix[i] = byte(x)
			img.Pix[i+1] = byte(y)
			img.Pix[i+2] = byte(x + y)
		}
	}
	return img
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}} {
		_, err := raster.New(dims[0], dims[1])
		assert.True(t, errors.Is(err, consts.ErrInvalidDimensions), `%dx%d`, dims[0], dims[1])
	}
}

func TestResampleNearestBufferSize(t *testing.T) {
	src := gradientImage(t, 13, 7)
	for _, dims := range [][2]int{{1, 1}, {7, 13}, {13, 7}, {40, 3}, {100, 100}} {
		dst, err := src.ResampleNearest(dims[0], dims[1])
		require.NoError(t, err)
		assert.Equal(t, dims[0]*dims[1]*raster.Channels, len(dst.Pix))
		assert.Equal(t, dims[0]*raster.Channels, dst.Stride)
	}
}

func TestResampleNearestPixelsComeFromSource(t *testing.T) {
	src := gradientImage(t, 4, 3)
	srcPixels := make(map[[3]byte]bool)
	for i := 0; i < len(src.Pix); i += raster.Channels {
		srcPixels[[3]byte(src.Pix[i:i+raster.Channels])] = true
	}

	dst, err := src.ResampleNearest(9, 5)
	require.NoError(t, err)
	for i := 0; i < len(dst.Pix); i += raster.Channels {
		assert.True(t, srcPixels[[3]byte(dst.Pix[i:i+raster.Channels])],
			`pixel at byte offset %d not taken from the source`, i)
	}
}

func TestResampleNearestSameSizeIsLossless(t *testing.T) {
	src := gradientImage(t, 11, 6)
	dst, err := src.ResampleNearest(11, 6)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, dst.Pix)
}

func TestResampleNearestDoubling(t *testing.T) {
	// 2x2 source doubled: each source pixel becomes a 2x2 block
	src := gradientImage(t, 2, 2)
	dst, err := src.ResampleNearest(4, 4)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			srcIdx := (y/2)*src.Stride + (x/2)*raster.Channels
			dstIdx := y*dst.Stride + x*raster.Channels
			assert.Equal(t,
				src.Pix[srcIdx:srcIdx+raster.Channels],
				dst.Pix[dstIdx:dstIdx+raster.Channels],
				`pixel (%d,%d)`, x, y)
		}
	}
}

func TestResampleNearestDoesNotMutateSource(t *testing.T) {
	src := gradientImage(t, 5, 5)
	before := make([]byte, len(src.Pix))
	copy(before, src.Pix)
	_, err := src.ResampleNearest(2, 9)
	require.NoError(t, err)
	assert.Equal(t, before, src.Pix)
}

func TestResampleNearestInvalidDimensions(t *testing.T) {
	src := gradientImage(t, 4, 4)
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-2, 4}, {4, -2}} {
		_, err := src.ResampleNearest(dims[0], dims[1])
		assert.True(t, errors.Is(err, consts.ErrInvalidDimensions), `%dx%d`, dims[0], dims[1])
	}
}

func TestLoadPNG(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	m.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	m.SetNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	path := filepath.Join(t.TempDir(), `test.png`)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, m); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	img, err := raster.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, 3*raster.Channels, img.Stride)
	assert.Equal(t, []byte{10, 20, 30}, img.Pix[:3])
	last := 1*img.Stride + 2*raster.Channels
	assert.Equal(t, []byte{200, 100, 50}, img.Pix[last:last+3])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := raster.Load(filepath.Join(t.TempDir(), `missing.png`))
	assert.True(t, errors.Is(err, consts.ErrDecodeFailed))
}

func TestLoadUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), `garbage.png`)
	if err := os.WriteFile(path, []byte(`not an image`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := raster.Load(path)
	assert.True(t, errors.Is(err, consts.ErrDecodeFailed))
}
