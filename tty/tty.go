// Package tty provides raw single-keystroke terminal input via
// [github.com/mattn/go-tty]: line buffering and echo are disabled while
// the TTY is open and restored on Close.
//
// [github.com/mattn/go-tty]: https://pkg.go.dev/github.com/mattn/go-tty
package tty

import (
	ttymattn "github.com/mattn/go-tty"

	"github.com/AliceZed8/zfbv/internal/errors"
	"github.com/AliceZed8/zfbv/viewer"
)

type TTY struct {
	tty *ttymattn.TTY
}

var _ viewer.KeyReader = (*TTY)(nil)

// Open puts the controlling terminal into raw mode.
func Open() (*TTY, error) {
	t, err := ttymattn.Open()
	if err != nil {
		return nil, errors.New(err)
	}
	if t == nil {
		return nil, errors.New(`nil tty`)
	}
	return &TTY{tty: t}, nil
}

// ReadRune blocks for a single keystroke.
func (t *TTY) ReadRune() (r rune, size int, err error) {
	r = '�'
	if t == nil {
		return r, len(string(r)), errors.NilReceiver()
	}
	if t.tty == nil {
		return r, len(string(r)), errors.New(`nil tty`)
	}
	r, err = t.tty.ReadRune()
	if err != nil {
		r = '�'
	}
	return r, len(string(r)), err
}

// Close restores the terminal mode. Idempotent.
func (t *TTY) Close() error {
	if t == nil || t.tty == nil {
		return nil
	}
	defer func() { t.tty = nil }()
	return t.tty.Close()
}
