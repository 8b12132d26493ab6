//go:build !linux

package fb

import (
	"github.com/AliceZed8/zfbv/internal/consts"
	"github.com/AliceZed8/zfbv/internal/errors"
)

// Device is only available on Linux.
type Device struct {
	*shadow
}

var _ Surface = (*Device)(nil)

func Open(device string) (*Device, error) {
	return nil, errors.New(consts.ErrPlatformNotSupported)
}

func (d *Device) Flush() error { return errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) Close() error { return nil }
