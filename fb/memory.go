package fb

import (
	"github.com/AliceZed8/zfbv/internal/errors"
)

// Memory is a Surface backed by a plain byte slice instead of a device
// mapping. It composes exactly like Device and stands in for hardware
// in tests.
type Memory struct {
	*shadow
	frame   []byte
	flushes int
}

var _ Surface = (*Memory)(nil)

func NewMemory(width, height, bpp int) *Memory {
	return &Memory{
		shadow: newShadow(width, height, bpp),
		frame:  make([]byte, width*height*bpp),
	}
}

func (m *Memory) Flush() error {
	if m == nil || m.shadow == nil {
		return errors.NilReceiver()
	}
	copy(m.frame, m.pix)
	m.flushes++
	return nil
}

func (m *Memory) Close() error {
	if m == nil {
		return nil
	}
	m.shadow = nil
	m.frame = nil
	return nil
}

// Frame returns the pixels as of the last Flush.
func (m *Memory) Frame() []byte {
	if m == nil {
		return nil
	}
	return m.frame
}

// Flushes returns how many times Flush has been called.
func (m *Memory) Flushes() int {
	if m == nil {
		return 0
	}
	return m.flushes
}
