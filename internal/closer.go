package internal

import (
	"errors"

	errorsGo "github.com/go-errors/errors"
)

// Closer collects teardown steps and runs them in reverse acquisition
// order. Close is idempotent.
type Closer interface {
	Close() error
	OnClose(onClose func() error)
	AddClosers(closers ...interface{ Close() error })
}

var _ Closer = (*lifoCloser)(nil)

type lifoCloser struct {
	onCloseFuncs []func() error
	closed       bool
}

func NewCloser() Closer { return &lifoCloser{} }

func (c *lifoCloser) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	var errs []error
	for i := len(c.onCloseFuncs) - 1; i > -1; i-- {
		if onCloseFunc := c.onCloseFuncs[i]; onCloseFunc != nil {
			if err := onCloseFunc(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	c.onCloseFuncs = nil
	if err := errors.Join(errs...); err != nil {
		return errorsGo.Wrap(err, 1)
	}
	return nil
}

func (c *lifoCloser) OnClose(onClose func() error) {
	if c == nil || c.closed || onClose == nil {
		return
	}
	c.onCloseFuncs = append(c.onCloseFuncs, onClose)
}

func (c *lifoCloser) AddClosers(closers ...interface{ Close() error }) {
	if c == nil || c.closed {
		return
	}
	for _, cl := range closers {
		cl := cl
		if cl == nil {
			continue
		}
		c.OnClose(cl.Close)
	}
}
