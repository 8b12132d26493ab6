//go:build linux

package fb

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/AliceZed8/zfbv/internal/consts"
	"github.com/AliceZed8/zfbv/internal/errors"
)

const fbioGetVScreenInfo = 0x4600 // FBIOGET_VSCREENINFO

type bitField struct {
	Offset, Length, MsbRight uint32
}

// varScreenInfo mirrors the kernel's struct fb_var_screeninfo. The
// ioctl fills the whole struct, so all fields must be present even
// though only Xres, Yres and BitsPerPixel are read.
type varScreenInfo struct {
	Xres, Yres,
	XresVirtual, YresVirtual,
	Xoffset, Yoffset,
	BitsPerPixel, Grayscale uint32
	Red, Green, Blue, Transp bitField
	Nonstd, Activate,
	Height, Width,
	AccelFlags, Pixclock,
	LeftMargin, RightMargin, UpperMargin, LowerMargin,
	HsyncLen, VsyncLen, Sync,
	Vmode, Rotate, Colorspace uint32
	Reserved [4]uint32
}

// Device is a Surface backed by a memory-mapped framebuffer device.
type Device struct {
	*shadow
	dev *os.File
	mem []byte
}

var _ Surface = (*Device)(nil)

// Open acquires the framebuffer device, queries its geometry and maps
// its pixel region. Partially acquired resources are released on
// failure.
func Open(device string) (*Device, error) {
	f, err := os.OpenFile(device, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, errors.Join(consts.ErrDeviceUnavailable, err)
	}
	var vinfo varScreenInfo
	if err := ioctl(f.Fd(), fbioGetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		_ = f.Close()
		return nil, errors.Join(consts.ErrGeometryQueryFailed, err)
	}
	width := int(vinfo.Xres)
	height := int(vinfo.Yres)
	bpp := int(vinfo.BitsPerPixel) / 8
	mem, err := unix.Mmap(int(f.Fd()), 0, width*height*bpp,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, errors.Join(consts.ErrMappingFailed, err)
	}
	return &Device{
		shadow: newShadow(width, height, bpp),
		dev:    f,
		mem:    mem,
	}, nil
}

// Flush copies the whole shadow buffer over the hardware mapping in one
// pass. This is the only place hardware memory is written.
func (d *Device) Flush() error {
	if d == nil || d.shadow == nil || d.mem == nil {
		return errors.NilReceiver()
	}
	copy(d.mem, d.pix)
	return nil
}

// Close unmaps the hardware region and releases the device. Idempotent.
func (d *Device) Close() error {
	if d == nil || d.dev == nil {
		return nil
	}
	var errs []error
	if d.mem != nil {
		if err := unix.Munmap(d.mem); err != nil {
			errs = append(errs, err)
		}
		d.mem = nil
	}
	errs = append(errs, d.dev.Close())
	d.dev = nil
	d.shadow = nil
	return errors.Join(errs...)
}

func ioctl(fd uintptr, cmd uintptr, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, uintptr(arg)); errno != 0 {
		return os.NewSyscallError(`ioctl`, errno)
	}
	return nil
}
