// Package consts holds shared sentinel errors and names.
package consts

import (
	"errors"
)

var (
	ErrDeviceUnavailable    = errors.New(`cannot open framebuffer device`)
	ErrGeometryQueryFailed  = errors.New(`cannot query framebuffer geometry`)
	ErrMappingFailed        = errors.New(`cannot map framebuffer memory`)
	ErrUnsupportedDepth     = errors.New(`unsupported bits per pixel`)
	ErrDecodeFailed         = errors.New(`cannot decode image`)
	ErrInvalidDimensions    = errors.New(`invalid image dimensions`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)
)

const (
	ProgramName = `zfbv`

	DefaultFramebufferDevice = `/dev/fb0`
)
